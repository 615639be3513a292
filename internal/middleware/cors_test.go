// internal/middleware/cors_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(origins []string) http.Handler {
	return CORS(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	h := corsHandler([]string{"http://localhost:3000"})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected mirrored origin, got %q", got)
	}
	if rec.Header().Get("Vary") != "Origin" {
		t.Fatal("Vary: Origin missing")
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	h := corsHandler([]string{"http://localhost:3000"})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("request itself must still pass, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow header %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := corsHandler([]string{"http://localhost:3000"})

	req := httptest.NewRequest("OPTIONS", "/api/leads", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("methods header missing on preflight")
	}
}
