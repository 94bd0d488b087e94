package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSAllowedOrigin(t *testing.T) {
	mw := CORS([]string{"https://mrhealth.example"})
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("Origin", "https://mrhealth.example")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://mrhealth.example" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	mw := CORS([]string{"https://mrhealth.example"})
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	mw := CORS([]string{"*"})
	req := httptest.NewRequest(http.MethodOptions, "/appointments", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
	if called {
		t.Fatal("preflight should not reach the handler")
	}
}
