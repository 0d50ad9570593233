package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/logger"
)

// Envelope is the body of every response.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Meta    any               `json:"meta,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Envelope{Success: true, Message: message, Data: data})
}

// WithPage sends one page of a listing together with its pagination metadata
func WithPage(writer http.ResponseWriter, data any, meta any) {
	response(writer, http.StatusOK, Envelope{Success: true, Data: data, Meta: meta})
}

// WithError sends a response with an error message. Only failures carry their own
// message; anything else is logged and reported as an internal error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if !failure.IsFailure(err) {
		logger.ErrorWithStack(err)

		response(writer, code, Envelope{Message: constant.ResponseErrorInternal})

		return
	}

	var fields map[string]string
	if code == http.StatusUnprocessableEntity {
		fields = failureFields(err)
	}

	response(writer, code, Envelope{Message: err.Error(), Errors: fields})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func WithNotFound(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusNotFound, constant.ResponseErrorNotFound)
}

func WithMethodNotAllowed(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

func failureFields(err error) map[string]string {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		return nil
	}

	return fail.Errors
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
