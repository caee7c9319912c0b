package trivia

import (
	"errors"
)

// Error classes surfaced to callers. Operations wrap exactly one of these.
var (
	ErrValidation         = errors.New("bad request")
	ErrNotFound           = errors.New("resource not found")
	ErrUnprocessable      = errors.New("unprocessable")
	ErrMethodNotSupported = errors.New("method not allowed")
	ErrInternal           = errors.New("internal server error")
)

// Classify returns the error class of err. Errors carrying no class are internal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, class := range []error{ErrValidation, ErrNotFound, ErrUnprocessable, ErrMethodNotSupported} {
		if errors.Is(err, class) {
			return class
		}
	}
	return ErrInternal
}
