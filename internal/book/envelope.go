package book

import (
	"errors"
	"net/http"

	"bookshelf/internal/httpx"
)

// EnvelopeFor maps an operation error onto its HTTP code and envelope.
// Errors that are not engine errors are reported as a generic server error.
func EnvelopeFor(err error) (int, httpx.Envelope) {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus(), httpx.Envelope{Status: e.Status(), Message: e.Message}
	}
	return http.StatusInternalServerError, httpx.Envelope{Status: httpx.StatusError, Message: "Internal server error"}
}
