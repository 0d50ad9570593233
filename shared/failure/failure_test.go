package failure_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"reservo/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("failed to decode request body"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "failed to decode request body"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestUnprocessable(t *testing.T) {
	tests := []struct {
		name            string
		message         string
		fields          map[string]string
		expectedMessage string
	}{
		{
			name:            "with explicit message",
			message:         "Maximum 10 guests allowed per booking.",
			fields:          map[string]string{"guests": "Maximum 10 guests allowed per booking."},
			expectedMessage: "Maximum 10 guests allowed per booking.",
		},
		{
			name:            "with empty message falls back to default",
			message:         "",
			fields:          map[string]string{"date": "date is required"},
			expectedMessage: "The given data was invalid.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(failure.Unprocessable(tt.message, tt.fields), &f) {
				t.Fatal("expected *failure.Failure")
			}

			if f.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected code %d, got %d", http.StatusUnprocessableEntity, f.Code)
			}

			if f.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, f.Message)
			}

			if len(f.Errors) != len(tt.fields) {
				t.Errorf("expected %d field errors, got %d", len(tt.fields), len(f.Errors))
			}
		})
	}
}

func TestUnprocessableField(t *testing.T) {
	var f *failure.Failure
	if !errors.As(failure.UnprocessableField("date_to", "end before start"), &f) {
		t.Fatal("expected *failure.Failure")
	}

	if f.Errors["date_to"] != "end before start" {
		t.Errorf("expected field message to be recorded, got %v", f.Errors)
	}
}

func TestStorage(t *testing.T) {
	cause := fmt.Errorf("failed to begin transaction: %w", sql.ErrConnDone)
	err := failure.Storage(cause)

	if failure.GetCode(err) != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(err))
	}

	if err.Error() == cause.Error() {
		t.Error("expected storage failure to hide the underlying message")
	}

	if !errors.Is(err, sql.ErrConnDone) {
		t.Error("expected storage failure to unwrap to its cause")
	}

	if failure.Storage(nil) != nil {
		t.Error("expected nil for nil cause")
	}
}

func TestServiceUnavailable(t *testing.T) {
	cause := errors.New("canceling statement due to lock timeout")
	err := failure.ServiceUnavailable(cause)

	if failure.GetCode(err) != http.StatusServiceUnavailable {
		t.Errorf("expected code %d, got %d", http.StatusServiceUnavailable, failure.GetCode(err))
	}

	if !errors.Is(err, cause) {
		t.Error("expected failure to unwrap to its cause")
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("Booking not found.")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}

	if f.Message != "Booking not found." {
		t.Errorf("expected message to be 'Booking not found.', got %s", f.Message)
	}
}

func TestConflict(t *testing.T) {
	result := failure.Conflict("Booking has already been processed.")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, f.Code)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.Conflict("test")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsFailure(t *testing.T) {
	if !failure.IsFailure(fmt.Errorf("wrapped: %w", failure.NotFound("x"))) {
		t.Error("expected wrapped failure to be detected")
	}

	if failure.IsFailure(errors.New("plain")) {
		t.Error("expected plain error not to be a failure")
	}
}
