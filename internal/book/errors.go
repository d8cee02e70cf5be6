package book

import (
	"errors"
	"net/http"

	"bookshelf/internal/httpx"
)

// Kind classifies an engine failure.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindPersistence
)

// Error is returned by every Service operation that does not succeed.
// Message is safe to show to callers; Err is kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the envelope status tag for the error kind.
func (e *Error) Status() string {
	if e.Kind == KindPersistence {
		return httpx.StatusError
	}
	return httpx.StatusFail
}

// HTTPStatus returns the HTTP code the transport should answer with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func validationFailed(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: ErrNotFound}
}

func persistenceFailed(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// IsKind reports whether err is an engine Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
