package failure

import (
	"errors"
	"net/http"
)

const (
	messageInternal           = "Internal server error."
	messageServiceUnavailable = "The record is busy, please try again."
	messageValidation         = "The given data was invalid."
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	cause   error
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any, to errors.Is and errors.As.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unprocessable returns a new Failure for input that failed validation. The map holds
// one message per offending field.
func Unprocessable(msg string, fields map[string]string) error {
	if msg == "" {
		msg = messageValidation
	}

	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Errors:  fields,
	}
}

// UnprocessableField is a shorthand for a single offending field.
func UnprocessableField(field, msg string) error {
	return Unprocessable(msg, map[string]string{field: msg})
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// Storage hides a store failure behind a generic message while keeping the cause
// available for logging.
func Storage(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: messageInternal,
		cause:   err,
	}
}

// ServiceUnavailable reports a transient store condition such as a lock wait timeout.
func ServiceUnavailable(err error) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: messageServiceUnavailable,
		cause:   err,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsFailure reports whether err already carries a response code.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
