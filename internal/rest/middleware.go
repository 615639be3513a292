// internal/rest/middleware.go
//
// Request-counting middleware.  Feeds metrics.HTTPRequestsTotal with the
// method and collapsed status class ("2xx", "4xx", ...) so the label
// cardinality stays flat regardless of route count.

package rest

import (
	"net/http"
	"strconv"

	"github.com/pamirmotors/pamir/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Count wraps next and increments the request counter once per response.
func Count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		class := strconv.Itoa(rec.status/100) + "xx"
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, class).Inc()
	})
}
