package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"
	"bookshelf/internal/platform/logger"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, ready func(context.Context) error) http.Handler {
	t.Helper()
	limiter := httpx.NewRateLimitMiddleware(1000, 1000)
	t.Cleanup(limiter.Stop)

	service := book.NewService(book.NewMemoryRepo(), logger.NewNop())
	cfg := config.Config{MaxBodyBytes: 1 << 20}
	return newRouter(book.NewHTTPHandler(service), ready, logger.NewNop(), cfg, limiter)
}

func TestRouting_BookRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/books", "", http.StatusOK},
		{http.MethodPost, "/books", `{"name":"Routed","pageCount":1,"readPage":0}`, http.StatusCreated},
		{http.MethodGet, "/books/missing", "", http.StatusNotFound},
		{http.MethodPut, "/books/missing", `{"name":"x","pageCount":1,"readPage":1}`, http.StatusNotFound},
		{http.MethodDelete, "/books/missing", "", http.StatusNotFound},
		{http.MethodPatch, "/books/missing", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/readyz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouting_SetsRequestID(t *testing.T) {
	router := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouting_ReadyzReportsStoreFailure(t *testing.T) {
	router := newTestRouter(t, func(context.Context) error { return errors.New("down") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouting_BookLifecycle(t *testing.T) {
	router := newTestRouter(t, nil)

	serve := func(r *http.Request) testutil.RecordResponse {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return testutil.RecordHTTPResponse(w)
	}

	created := serve(testutil.NewRequest(http.MethodPost, "/books", map[string]any{
		"name": "Sea of Tranquility", "publisher": "Knopf", "pageCount": 272, "readPage": 12, "reading": true,
	}))
	require.Equal(t, http.StatusCreated, created.Code)
	require.Equal(t, "success", created.Status())
	id, _ := created.Data()["bookId"].(string)
	require.NotEmpty(t, id)

	updated := serve(testutil.NewRequest(http.MethodPut, "/books/"+id, map[string]any{
		"name": "Sea of Tranquility", "publisher": "Knopf", "pageCount": 272, "readPage": 272, "reading": false,
	}))
	require.Equal(t, http.StatusOK, updated.Code)

	got := serve(testutil.NewRequest(http.MethodGet, "/books/"+id, nil))
	require.Equal(t, http.StatusOK, got.Code)
	b, _ := got.Data()["book"].(map[string]interface{})
	assert.Equal(t, true, b["finished"])

	deleted := serve(testutil.NewRequest(http.MethodDelete, "/books/"+id, nil))
	require.Equal(t, http.StatusOK, deleted.Code)

	gone := serve(testutil.NewRequest(http.MethodGet, "/books/"+id, nil))
	assert.Equal(t, http.StatusNotFound, gone.Code)
	assert.Equal(t, "fail", gone.Status())
}
