package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/page-router/internal/config"
	"github.com/JaimeStill/page-router/pkg/route"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	srv, err := NewServer(cfg, io.Discard)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestServer_HistoryNavigation(t *testing.T) {
	h := newTestServer(t).Handler()

	w := get(h, "/page1/")
	if w.Code != http.StatusFound {
		t.Fatalf("GET /page1/ status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/page1/index" {
		t.Fatalf("Location = %q, want %q", loc, "/page1/index")
	}

	w = get(h, "/page1/index")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /page1/index status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Welcome to Your App") {
		t.Errorf("body does not render HelloWorld view")
	}

	if w = get(h, "/page2/"); w.Code != http.StatusNotFound {
		t.Errorf("GET /page2/ status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestServer_Health(t *testing.T) {
	h := newTestServer(t).Handler()

	w := get(h, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("GET /healthz = %d %q, want 200 OK", w.Code, w.Body.String())
	}

	if w = get(h, "/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /readyz before startup = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestServer_APIResolve(t *testing.T) {
	h := newTestServer(t).Handler()

	w := get(h, "/api/resolve?path=/page1/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var res route.Resolution
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Outcome.Kind != route.KindRender || res.Outcome.Name != "HelloWorld" {
		t.Errorf("Outcome = %+v, want HelloWorld render", res.Outcome)
	}
	if len(res.Redirects) != 1 {
		t.Errorf("len(Redirects) = %d, want 1", len(res.Redirects))
	}
}

func TestServer_Assets(t *testing.T) {
	h := newTestServer(t).Handler()

	for _, path := range []string{"/dist/app.js", "/dist/app.css", "/site.webmanifest"} {
		t.Run(path, func(t *testing.T) {
			if w := get(h, path); w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}
}
