// internal/inquiry/handler_test.go

package inquiry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler().Register(r)
	return r
}

func TestPartsInquiryAck(t *testing.T) {
	r := newRouter()

	body := `{"name":"John Smith","partName":"hydraulic filter","quantity":4}`
	req := httptest.NewRequest("POST", "/parts-inquiry", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Parts inquiry received successfully") {
		t.Fatalf("wrong ack: %s", rec.Body.String())
	}
}

func TestVehicleQuoteAck(t *testing.T) {
	r := newRouter()

	body := `{"name":"Michael Brown","vehicleModel":"D155AX"}`
	req := httptest.NewRequest("POST", "/vehicle-quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Vehicle quote request received successfully") {
		t.Fatalf("wrong ack: %s", rec.Body.String())
	}
}

func TestInquiryRejectsBrokenJSON(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest("POST", "/parts-inquiry", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
