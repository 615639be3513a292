// internal/admin/handler.go
//
// Dashboard credential check.
//
//	POST /admin/login {"username", "password"} → 200 ok / 401 rejected
//
// This is a single static comparison against the configured pair, not an
// account system: no sessions, no tokens, no lockout.  It exists so the
// dashboards have a server-side gate instead of the credential literal
// the legacy frontend shipped to every browser.

package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pamirmotors/pamir/internal/config"
	"github.com/pamirmotors/pamir/internal/rest"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler compares against the config-held pair.
type Handler struct {
	cfg config.Admin
}

func NewHandler(cfg config.Admin) *Handler { return &Handler{cfg: cfg} }

// Register mounts the login route on the /api router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := rest.Decode(r, &creds); err != nil {
		rest.Fail(w, "admin.login", "", err)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(h.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(h.cfg.Password)) == 1
	if !userOK || !passOK {
		zap.S().Warnw("admin login rejected", "username", creds.Username)
		rest.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	zap.S().Infow("admin login accepted", "username", creds.Username)
	rest.Message(w, http.StatusOK, "Login successful")
}
