package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/page-router/pkg/web"
)

func TestRouter_WithoutFallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exists"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_Fallback(t *testing.T) {
	r := web.NewRouter()
	r.Handle("GET /dist/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("asset"))
	}))
	r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("fallback"))
	})

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/dist/app.js", "asset"},
		{http.MethodGet, "/page1/", "fallback"},
		{http.MethodGet, "/", "fallback"},
		{http.MethodPost, "/page1/index", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}
}
