package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reservo/shared/failure"
	"reservo/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, "Booking created successfully.", map[string]int{"status": 0})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking created successfully.", body["message"])
	assert.Equal(t, map[string]any{"status": float64(0)}, body["data"])
	assert.NotContains(t, body, "meta")
}

func TestWithPage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPage(rec, []string{}, map[string]int{"total": 0})

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, map[string]any{"total": float64(0)}, body["meta"])
	assert.NotContains(t, body, "message")
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
		expectedErrors  map[string]any
	}{
		{
			name:            "not found",
			err:             failure.NotFound("Booking not found."),
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Booking not found.",
		},
		{
			name:            "wrapped conflict",
			err:             fmt.Errorf("transition: %w", failure.Conflict("Booking has already been processed. Current status: accepted.")),
			expectedCode:    http.StatusConflict,
			expectedMessage: "transition: Booking has already been processed. Current status: accepted.",
		},
		{
			name:            "validation carries field errors",
			err:             failure.UnprocessableField("guests", "Maximum 10 guests allowed per booking."),
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: "Maximum 10 guests allowed per booking.",
			expectedErrors:  map[string]any{"guests": "Maximum 10 guests allowed per booking."},
		},
		{
			name:            "storage failure hides its cause",
			err:             failure.Storage(errors.New("pq: password authentication failed")),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error.",
		},
		{
			name:            "plain error is never echoed",
			err:             errors.New("dial tcp 10.0.0.3:5432: connection refused"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.expectedMessage, body["message"])
			assert.NotContains(t, body, "data")

			if tt.expectedErrors == nil {
				assert.NotContains(t, body, "errors")
			} else {
				assert.Equal(t, tt.expectedErrors, body["errors"])
			}
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	tests := []struct {
		name         string
		send         func(w http.ResponseWriter)
		expectedCode int
	}{
		{name: "rate limited", send: response.WithRequestLimitExceeded, expectedCode: http.StatusTooManyRequests},
		{name: "shutting down", send: response.WithPreparingShutdown, expectedCode: http.StatusServiceUnavailable},
		{name: "unhealthy", send: response.WithUnhealthy, expectedCode: http.StatusServiceUnavailable},
		{name: "not found", send: response.WithNotFound, expectedCode: http.StatusNotFound},
		{name: "method not allowed", send: response.WithMethodNotAllowed, expectedCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.send(rec)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, false, decode(t, rec)["success"])
		})
	}
}
