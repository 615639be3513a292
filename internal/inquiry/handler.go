// internal/inquiry/handler.go
//
// Fire-and-forget inquiry routes.
//
//	POST /parts-inquiry  → log payload, static ack
//	POST /vehicle-quote  → log payload, static ack
//
// These are intentionally stateless: nothing is persisted regardless of
// store availability.  The sales team works the submissions off the log
// stream, so each entry carries the UA/geo summary from requestinfo.

package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pamirmotors/pamir/internal/metrics"
	"github.com/pamirmotors/pamir/internal/requestinfo"
	"github.com/pamirmotors/pamir/internal/rest"
)

// Ack messages match the legacy wire text.
const (
	partsAck = "Parts inquiry received successfully"
	quoteAck = "Vehicle quote request received successfully"
)

// Handler has no dependencies beyond the logger.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Register mounts the inquiry endpoints on the /api router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/parts-inquiry", h.handle("parts_inquiry", partsAck))
	r.Post("/vehicle-quote", h.handle("vehicle_quote", quoteAck))
}

// handle builds one inquiry endpoint.  The payload is arbitrary JSON;
// only syntactic validity is checked.
func (h *Handler) handle(kind, ack string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := rest.Decode(r, &payload); err != nil {
			rest.Fail(w, kind, "", err)
			return
		}

		fields := []any{"kind", kind, "payload", payload}
		if info := requestinfo.FromContext(r.Context()); info != nil {
			fields = append(fields, info.Fields()...)
		}
		zap.S().Infow("inquiry received", fields...)
		metrics.InquiriesTotal.WithLabelValues(kind).Inc()

		rest.Message(w, http.StatusOK, ack)
	}
}
