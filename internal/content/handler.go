// internal/content/handler.go
//
// REST routes for CMS content blocks.
//
//	GET    /content                  → all blocks (dashboard view)
//	GET    /content/{page}           → active blocks for a page, by order
//	GET    /content/{page}/{section} → first active (page, section) block
//	POST   /content                  → 201 + stored block
//	PUT    /content/{id}             → merge patch, 404 when absent
//	DELETE /content/{id}             → 404 when absent, else confirmation
//
// Routing note: pages and ids share the `/content/X` shape, and chi
// requires one wildcard name per segment, so the single-segment routes all
// bind {key}; GETs read it as a page, PUT/DELETE parse it as an id.

package content

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/pamirmotors/pamir/internal/rest"
)

var validate = validator.New()

// Handler serves the CMS routes.
type Handler struct {
	repo *Repo
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepo(db)}
}

// Register mounts the CMS endpoints on the /api router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/content", h.list)
	r.Post("/content", h.create)
	r.Get("/content/{key}", h.byPage)
	r.Get("/content/{key}/{section}", h.byPageSection)
	r.Put("/content/{key}", h.update)
	r.Delete("/content/{key}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.All(r.Context())
	if err != nil {
		rest.Fail(w, "content.list", "Content not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, rows)
}

func (h *Handler) byPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "key")
	rows, err := h.repo.ByPage(r.Context(), page)
	if err != nil {
		rest.Fail(w, "content.by_page", "Content not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, rows)
}

func (h *Handler) byPageSection(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "key")
	section := chi.URLParam(r, "section")
	block, err := h.repo.ByPageSection(r.Context(), page, section)
	if err != nil {
		rest.Fail(w, "content.by_section", "Content not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, block)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := rest.Decode(r, &sub); err != nil {
		rest.Fail(w, "content.create", "", err)
		return
	}
	if err := validate.Struct(&sub); err != nil {
		rest.Fail(w, "content.create", "", err)
		return
	}
	if !ValidPage(sub.Page) {
		rest.Fail(w, "content.create", "",
			fmt.Errorf("%w: unknown page %q", rest.ErrBadInput, sub.Page))
		return
	}

	active := true
	if sub.IsActive != nil {
		active = *sub.IsActive
	}
	block := &Block{
		Page:     sub.Page,
		Section:  sub.Section,
		Title:    sub.Title,
		Body:     sub.Body,
		ImageURL: sub.ImageURL,
		Order:    sub.Order,
		IsActive: active,
	}
	if err := h.repo.Insert(r.Context(), block); err != nil {
		rest.Fail(w, "content.create", "", err)
		return
	}

	zap.S().Infow("content created", "id", block.ID, "page", block.Page, "section", block.Section)
	rest.JSON(w, http.StatusCreated, block)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "content.update", "", err)
		return
	}

	var patch Patch
	if err := rest.Decode(r, &patch); err != nil {
		rest.Fail(w, "content.update", "", err)
		return
	}
	if patch.Page != nil && !ValidPage(*patch.Page) {
		rest.Fail(w, "content.update", "",
			fmt.Errorf("%w: unknown page %q", rest.ErrBadInput, *patch.Page))
		return
	}

	block, err := h.repo.ByID(r.Context(), id)
	if err != nil {
		rest.Fail(w, "content.update", "Content not found", err)
		return
	}

	patch.Apply(block)
	if err := h.repo.Update(r.Context(), block); err != nil {
		rest.Fail(w, "content.update", "Content not found", err)
		return
	}

	zap.S().Infow("content updated", "id", block.ID, "page", block.Page, "section", block.Section)
	rest.JSON(w, http.StatusOK, block)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "content.delete", "", err)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		rest.Fail(w, "content.delete", "Content not found", err)
		return
	}

	zap.S().Infow("content deleted", "id", id)
	rest.Message(w, http.StatusOK, "Content deleted")
}

func parseID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "key")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", rest.ErrBadInput, raw)
	}
	return id, nil
}
