// internal/crm/handler.go
//
// REST routes for leads and partner inquiries.
//
// Contract (mirrors the legacy backend):
//
//	GET  /leads          → all leads, newest first
//	POST /leads          → 201 + stored lead; status forced to "New Inquiry"
//	PUT  /leads/{id}     → merge patch, stamp updatedAt, 404 when absent
//	GET  /partners       → all partner inquiries, newest first
//	POST /partners       → 201 + stored inquiry
//
// Partner rows have no update or delete route; the dashboard treats them
// as an inbox.

package crm

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/pamirmotors/pamir/internal/requestinfo"
	"github.com/pamirmotors/pamir/internal/rest"
)

// Handler bundles both repositories behind one chi router.
type Handler struct {
	leads    *LeadRepo
	partners *PartnerRepo
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		leads:    NewLeadRepo(db),
		partners: NewPartnerRepo(db),
	}
}

// Register mounts the CRM endpoints on the /api router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/leads", h.listLeads)
	r.Post("/leads", h.createLead)
	r.Put("/leads/{id}", h.updateLead)
	r.Get("/partners", h.listPartners)
	r.Post("/partners", h.createPartner)
}

/*──────────────────────────── leads ────────────────────────────────────────*/

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	rows, err := h.leads.All(r.Context())
	if err != nil {
		rest.Fail(w, "leads.list", "Lead not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, rows)
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	var sub LeadSubmission
	if err := rest.Decode(r, &sub); err != nil {
		rest.Fail(w, "leads.create", "", err)
		return
	}

	lead := &Lead{
		Name:    sub.Name,
		Company: sub.Company,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Subject: sub.Subject,
		Message: sub.Message,
		Status:  StatusNewInquiry,
	}
	if err := h.leads.Insert(r.Context(), lead); err != nil {
		rest.Fail(w, "leads.create", "", err)
		return
	}

	fields := []any{"id", lead.ID, "company", lead.Company, "subject", lead.Subject}
	if info := requestinfo.FromContext(r.Context()); info != nil {
		fields = append(fields, info.Fields()...)
	}
	zap.S().Infow("lead captured", fields...)

	rest.JSON(w, http.StatusCreated, lead)
}

func (h *Handler) updateLead(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "leads.update", "", err)
		return
	}

	var patch LeadPatch
	if err := rest.Decode(r, &patch); err != nil {
		rest.Fail(w, "leads.update", "", err)
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		rest.Fail(w, "leads.update", "",
			fmt.Errorf("%w: unknown status %q", rest.ErrBadInput, *patch.Status))
		return
	}

	lead, err := h.leads.ByID(r.Context(), id)
	if err != nil {
		rest.Fail(w, "leads.update", "Lead not found", err)
		return
	}

	patch.Apply(lead)
	if err := h.leads.Update(r.Context(), lead); err != nil {
		rest.Fail(w, "leads.update", "Lead not found", err)
		return
	}

	zap.S().Infow("lead updated", "id", lead.ID, "status", lead.Status)
	rest.JSON(w, http.StatusOK, lead)
}

/*──────────────────────────── partners ─────────────────────────────────────*/

func (h *Handler) listPartners(w http.ResponseWriter, r *http.Request) {
	rows, err := h.partners.All(r.Context())
	if err != nil {
		rest.Fail(w, "partners.list", "Partner not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, rows)
}

func (h *Handler) createPartner(w http.ResponseWriter, r *http.Request) {
	var sub PartnerSubmission
	if err := rest.Decode(r, &sub); err != nil {
		rest.Fail(w, "partners.create", "", err)
		return
	}

	partner := &Partner{
		Name:    sub.Name,
		Company: sub.Company,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Message: sub.Message,
		Status:  StatusNewInquiry,
	}
	if err := h.partners.Insert(r.Context(), partner); err != nil {
		rest.Fail(w, "partners.create", "", err)
		return
	}

	fields := []any{"id", partner.ID, "company", partner.Company}
	if info := requestinfo.FromContext(r.Context()); info != nil {
		fields = append(fields, info.Fields()...)
	}
	zap.S().Infow("partner inquiry captured", fields...)

	rest.JSON(w, http.StatusCreated, partner)
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

// parseID rejects non-numeric identifiers with the 400 the legacy
// backend produced for malformed ObjectIDs.
func parseID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", rest.ErrBadInput, raw)
	}
	return id, nil
}
