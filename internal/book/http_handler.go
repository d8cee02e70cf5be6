package book

import (
	"net/http"

	"bookshelf/internal/httpx"
)

const msgInvalidPayload = "Invalid request payload"

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register binds the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{bookId}", h.Get)
	mux.HandleFunc("PUT /books/{bookId}", h.Update)
	mux.HandleFunc("DELETE /books/{bookId}", h.Delete)
}

func writeError(w http.ResponseWriter, err error) {
	code, env := EnvelopeFor(err)
	httpx.JSON(w, code, env)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ParseFilter(query.Get("name"), query.Get("reading"), query.Get("finished"))

	books, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"books": books})
}

// Get handles GET /books/{bookId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("bookId"))
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"book": b})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusCreated, msgAdded, map[string]any{"bookId": id})
}

// Update handles PUT /books/{bookId}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	if err := h.service.Update(r.Context(), r.PathValue("bookId"), in); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, msgUpdated, nil)
}

// Delete handles DELETE /books/{bookId}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("bookId")); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, msgDeleted, nil)
}
