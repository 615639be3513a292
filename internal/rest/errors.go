// internal/rest/errors.go
//
// Store-error taxonomy.
//
// Every handler funnels persistence errors through Fail, which maps them
// onto the four statuses the clients understand:
//
//	400  validation (message passed through)
//	404  row absent
//	503  store unreachable ("Database not available")
//	500  anything else, including query timeouts: a slow store is a
//	     server fault, not the unavailability banner
//
// The 503 branch is the platform's single availability policy: the server
// boots and keeps serving while the store is down, and every entity route
// reports the same stable message until connectivity returns.

package rest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/pamirmotors/pamir/internal/metrics"
)

// ErrBadInput wraps malformed bodies and rejected enum values.  The text
// after the sentinel is surfaced verbatim in the 400 body.
var ErrBadInput = errors.New("invalid input")

// unavailableMsg matches the legacy wire message byte for byte; the admin
// dashboards string-match it.
const unavailableMsg = "Database not available"

// StatusOf classifies err into the HTTP taxonomy.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, ErrBadInput):
		return http.StatusBadRequest
	case isValidation(err):
		return http.StatusBadRequest
	case unavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fail logs the failed operation and writes the mapped error body.
// notFoundMsg customises the 404 text per entity ("Lead not found" etc.).
func Fail(w http.ResponseWriter, op, notFoundMsg string, err error) {
	status := StatusOf(err)

	zap.S().Errorw("operation failed", "op", op, "status", status, "err", err)

	switch status {
	case http.StatusNotFound:
		Message(w, status, notFoundMsg)
	case http.StatusServiceUnavailable:
		metrics.StoreErrorsTotal.Inc()
		Message(w, status, unavailableMsg)
	case http.StatusInternalServerError:
		metrics.StoreErrorsTotal.Inc()
		Message(w, status, err.Error())
	default:
		// Validation text is passed through unfiltered, as the legacy
		// backend did.
		Message(w, status, err.Error())
	}
}

func isValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// unavailable recognises "the store is down" across the error shapes the
// mysql driver produces: bad-conn sentinels, dial failures, and the
// driver's own invalid-connection error.  Context deadline and
// cancellation errors satisfy net.Error but describe the query, not the
// store, so they classify as 500.
func unavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "invalid connection")
}
