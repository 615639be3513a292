// internal/catalog/handler_test.go
//
// Route-level tests for the catalog endpoints with sqlmock.

package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
)

var partCols = []string{
	"id", "name", "part_number", "category", "compatible_models", "price",
	"description", "images", "in_stock", "featured", "created_at", "updated_at",
}

func newRouter(t *testing.T) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := chi.NewRouter()
	NewHandler(sqlx.NewDb(db, "sqlmock")).Register(r)
	return r, mock
}

func TestGetSparePartJSONColumns(t *testing.T) {
	r, mock := newRouter(t)

	ts := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, name, part_number, category, compatible_models, price, description, images, in_stock, featured, created_at, updated_at FROM spare_parts WHERE id = ? LIMIT 1`,
	)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(partCols).
			AddRow(3, "Track Roller", "TR-4511", "Undercarriage",
				[]byte(`["D155","D85","D65"]`), 249.99, "",
				[]byte(`["tr1.jpg","tr2.jpg"]`), true, false, ts, ts))

	req := httptest.NewRequest("GET", "/spare-parts/3", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got SparePart
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PartNumber != "TR-4511" {
		t.Fatalf("unexpected part: %#v", got)
	}
	// Compatibility lists keep their stored order.
	if len(got.CompatibleModels) != 3 || got.CompatibleModels[0] != "D155" {
		t.Fatalf("compatible models mangled: %#v", got.CompatibleModels)
	}
	if len(got.Images) != 2 || got.Images[1] != "tr2.jpg" {
		t.Fatalf("images mangled: %#v", got.Images)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestCreateVehicleDefaultsInStock(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO vehicles (name, model, brand, category, price, description, specifications, images, in_stock, featured, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)).
		WithArgs("Dozer", "D155AX", "Komatsu", "Bulldozer", 185000.0, "",
			`{"engine":"SAA6D140E-7"}`, "[]", true, false,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))

	body := `{"name":"Dozer","model":"D155AX","brand":"Komatsu",
	          "category":"Bulldozer","price":185000,
	          "specifications":{"engine":"SAA6D140E-7"}}`
	req := httptest.NewRequest("POST", "/vehicles", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got Vehicle
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 2 || !got.InStock {
		t.Fatalf("unexpected stored vehicle: %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestCreateVehicleMissingPrice(t *testing.T) {
	r, _ := newRouter(t)

	body := `{"name":"Dozer","model":"D155AX","brand":"Komatsu","category":"Bulldozer"}`
	req := httptest.NewRequest("POST", "/vehicles", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Price") {
		t.Fatalf("expected validator message naming Price, got %s", rec.Body.String())
	}
}

func TestUpdateSparePartStockOnly(t *testing.T) {
	r, mock := newRouter(t)

	ts := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, name, part_number, category, compatible_models, price, description, images, in_stock, featured, created_at, updated_at FROM spare_parts WHERE id = ? LIMIT 1`,
	)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(partCols).
			AddRow(3, "Track Roller", "TR-4511", "Undercarriage",
				[]byte(`["D155"]`), 249.99, "", []byte(`[]`), true, false, ts, ts))

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE spare_parts SET name = ?, part_number = ?, category = ?, compatible_models = ?, price = ?, description = ?, images = ?, in_stock = ?, featured = ?, updated_at = ? WHERE id = ?`,
	)).
		WithArgs("Track Roller", "TR-4511", "Undercarriage", `["D155"]`,
			249.99, "", "[]", false, false, sqlmock.AnyArg(), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("PUT", "/spare-parts/3", strings.NewReader(`{"inStock":false}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got SparePart
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.InStock || got.Price != 249.99 {
		t.Fatalf("unexpected merged part: %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

// Re-sending the current stock flag changes no columns; zero affected
// rows must not 404 a part that was just fetched.
func TestUpdateSparePartNoOpStill200(t *testing.T) {
	r, mock := newRouter(t)

	ts := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, name, part_number, category, compatible_models, price, description, images, in_stock, featured, created_at, updated_at FROM spare_parts WHERE id = ? LIMIT 1`,
	)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(partCols).
			AddRow(3, "Track Roller", "TR-4511", "Undercarriage",
				[]byte(`["D155"]`), 249.99, "", []byte(`[]`), true, false, ts, ts))

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE spare_parts SET name = ?, part_number = ?, category = ?, compatible_models = ?, price = ?, description = ?, images = ?, in_stock = ?, featured = ?, updated_at = ? WHERE id = ?`,
	)).
		WithArgs("Track Roller", "TR-4511", "Undercarriage", `["D155"]`,
			249.99, "", "[]", true, false, sqlmock.AnyArg(), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest("PUT", "/spare-parts/3", strings.NewReader(`{"inStock":true}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for no-op update, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestDeleteVehicleMissing(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM vehicles WHERE id = ?`)).
		WithArgs(uint64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest("DELETE", "/vehicles/77", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Vehicle not found") {
		t.Fatalf("expected legacy message, got %s", rec.Body.String())
	}
}

func TestDeleteSparePartConfirmation(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM spare_parts WHERE id = ?`)).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("DELETE", "/spare-parts/3", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Spare part deleted") {
		t.Fatalf("expected confirmation, got %s", rec.Body.String())
	}
}
