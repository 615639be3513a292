// internal/rest/router.go
//
// Root router assembly.
//
// Middleware order matters: CORS first so even rejected requests get
// preflight answers, then security headers, request counting, and the
// requestinfo enrichment the capture handlers read.  Resource routers
// are mounted under /api; /metrics sits outside that prefix.

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pamirmotors/pamir/internal/middleware"
	"github.com/pamirmotors/pamir/internal/requestinfo"
)

// Resource is the contract every entity handler satisfies: it registers
// its endpoints on the shared /api router.
type Resource interface {
	Register(chi.Router)
}

// NewRouter assembles the full handler tree.
func NewRouter(corsOrigins []string, resources ...Resource) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(corsOrigins))
	r.Use(middleware.Security)
	r.Use(Count)
	r.Use(requestinfo.Enrich)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		for _, res := range resources {
			res.Register(api)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		Message(w, http.StatusNotFound, "Not found")
	})

	return r
}
