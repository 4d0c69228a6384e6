package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok:" + chi.URLParam(r, "id")))
	})
}

func TestRouterProvider_RecordsMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/a", dummyHandler())
	rp.Post("/b", dummyHandler())
	rp.Put("/c/{id}", dummyHandler())
	rp.Delete("/c/{id}", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 4)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, http.MethodPost, routes[1].Method)
	assert.Equal(t, http.MethodPut, routes[2].Method)
	assert.Equal(t, http.MethodDelete, routes[3].Method)
	assert.Equal(t, "/c/{id}", routes[3].Url)
}

func TestRouterProvider_MountServesPathParams(t *testing.T) {
	rp := NewRouterProvider()
	rp.Put("/item/{id}", dummyHandler())

	r := chi.NewRouter()
	rp.Mount(r)

	req := httptest.NewRequest(http.MethodPut, "/item/abc", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok:abc", rr.Body.String())
}

func TestRouterProvider_MountRejectsWrongMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	r := chi.NewRouter()
	rp.Mount(r)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
