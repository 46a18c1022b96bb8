package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("record not found")
	ErrBadRequest   = errors.New("invalid request")
	ErrEmailTaken   = errors.New("a user with this email already exists")

	ErrSessionNotFound = errors.New("session not found or expired")
	ErrInvalidLogin    = errors.New("invalid email or password")
)

// CodeFor maps the sentinel errors above to HTTP status codes. Anything
// unknown is an internal error.
func CodeFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrInvalidLogin):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// HttpError carries a status code and a user-facing message. The wrapped
// error is for logs only and never reaches the client.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}
