package httpx

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body shape of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = codec.NewEncoder(w).Encode(v)
}

func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	JSON(w, statusCode, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// JSONFail reports a condition the caller can correct.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{Status: StatusFail, Message: message})
}

// JSONError reports a server-side failure.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{Status: StatusError, Message: message})
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	return codec.NewDecoder(r.Body).Decode(v)
}
