// internal/admin/handler_test.go

package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pamirmotors/pamir/internal/config"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler(config.Admin{Username: "admin", Password: "password"}).Register(r)
	return r
}

func post(r chi.Router, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	rec := post(newRouter(), `{"username":"admin","password":"password"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Login successful") {
		t.Fatalf("wrong body: %s", rec.Body.String())
	}
}

func TestLoginRejected(t *testing.T) {
	cases := []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"root","password":"password"}`,
		`{}`,
	}
	r := newRouter()
	for _, body := range cases {
		rec := post(r, body)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid credentials") {
			t.Errorf("%s: wrong body %s", body, rec.Body.String())
		}
	}
}
