// internal/health/handler.go
//
// Liveness and store-reachability probe.
//
//	GET /health → {"status": "OK", "timestamp": ..., "database": "Connected"|"Disconnected"}
//
// `status` reports process liveness and is always OK when the handler
// runs at all; `database` reflects the live ping.  The dashboards poll
// this route and string-match the database field, so its two values are
// part of the wire contract.

package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/pamirmotors/pamir/internal/database"
	"github.com/pamirmotors/pamir/internal/metrics"
	"github.com/pamirmotors/pamir/internal/rest"
)

// Report is the probe response body.
type Report struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// Handler probes the injected pool.
type Handler struct {
	db *sqlx.DB
}

func NewHandler(db *sqlx.DB) *Handler { return &Handler{db: db} }

// Register mounts the probe on the /api router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.probe)
}

func (h *Handler) probe(w http.ResponseWriter, r *http.Request) {
	dbState := "Disconnected"
	if database.Up(r.Context(), h.db) {
		dbState = "Connected"
		metrics.StoreUp.Set(1)
	} else {
		metrics.StoreUp.Set(0)
	}

	rest.JSON(w, http.StatusOK, Report{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		Database:  dbState,
	})
}
