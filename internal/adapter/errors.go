package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx reply of the reward server.
type APIError struct {
	StatusCode int

	// Message and CorrelationID are empty when the body was not the
	// ["<message>", "<correlation id>"] pair.
	Message       string
	CorrelationID string

	// Err is one of the sentinel errors above.
	Err error
}

func (e *APIError) Error() string {
	if e.CorrelationID == "" {
		return fmt.Sprintf("%v (http %d): %s", e.Err, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v (http %d): %s [correlation id %s]", e.Err, e.StatusCode, e.Message, e.CorrelationID)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
