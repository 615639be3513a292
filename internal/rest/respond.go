// internal/rest/respond.go
//
// JSON response and request-body helpers shared by every resource
// handler.  The wire shapes mirror the legacy API: success bodies are the
// record or array itself, failures are `{"message": "..."}`.

package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes v with the given status.  Encoding failures are logged and
// abandoned; headers are already gone by then.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("response encode failed", "err", err)
	}
}

// Message writes the legacy `{"message": ...}` envelope.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Decode unmarshals the request body into v.  The body is capped at 1 MiB
// and unknown fields are tolerated, matching the permissive legacy
// contract.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return nil
}
