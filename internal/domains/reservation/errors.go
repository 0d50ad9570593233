package reservation

import (
	"errors"
	"reservo/shared/constant"
	"reservo/shared/failure"

	"github.com/lib/pq"
)

// ConflictError is returned when a transition targets a record that already left
// pending. It unwraps to a 409 failure carrying the human readable message.
type ConflictError struct {
	Kind    Kind
	Current Status
}

func (e *ConflictError) Error() string {
	return e.Kind.ConflictMessage(e.Current)
}

func (e *ConflictError) Unwrap() error {
	return failure.Conflict(e.Error())
}

// StoreFailure classifies an error raised by the store. A lock wait timeout is
// transient and reported as 503, everything else is a generic storage failure.
func StoreFailure(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeLockNotAvailable {
		return failure.ServiceUnavailable(err)
	}

	return failure.Storage(err)
}
