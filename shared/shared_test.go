package shared_test

import (
	"reflect"
	"reservo/shared"
	"reservo/shared/dto"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "limiter", expected: "limiter"},
		{name: "prefix with parts", prefix: "limiter", parts: []string{"10.0.0.1", "curl"}, expected: "limiter:10.0.0.1:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "numeric id",
			id:      int64(42),
			fieldID: "id",
			table:   "bookings",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "id", Value: int64(42), Operator: dto.FilterOperatorEq, Table: "bookings"},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "id", Value: "456", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw        string
		expectedID int64
		expectedOK bool
	}{
		{raw: "42", expectedID: 42, expectedOK: true},
		{raw: "0"},
		{raw: "-3"},
		{raw: "abc"},
		{raw: "99999999999999999999"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, ok := shared.ParseID(tt.raw)
			if id != tt.expectedID || ok != tt.expectedOK {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.expectedID, tt.expectedOK, id, ok)
			}
		})
	}
}
