// internal/catalog/handler.go
//
// REST routes for the product catalog.
//
//	GET    /vehicles           GET    /spare-parts
//	GET    /vehicles/{id}      GET    /spare-parts/{id}
//	POST   /vehicles           POST   /spare-parts
//	PUT    /vehicles/{id}      PUT    /spare-parts/{id}
//	DELETE /vehicles/{id}      DELETE /spare-parts/{id}
//
// Create payloads are validated against the required-field set of the
// legacy schema; the validator message text is passed through in the 400
// body.

package catalog

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

// Handler bundles both catalog repositories behind one chi router.
type Handler struct {
	vehicles *VehicleRepo
	parts    *SparePartRepo
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		vehicles: NewVehicleRepo(db),
		parts:    NewSparePartRepo(db),
	}
}

// Register mounts the catalog endpoints on the /api router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/", h.listVehicles)
		r.Post("/", h.createVehicle)
		r.Get("/{id}", h.getVehicle)
		r.Put("/{id}", h.updateVehicle)
		r.Delete("/{id}", h.deleteVehicle)
	})
	r.Route("/spare-parts", func(r chi.Router) {
		r.Get("/", h.listParts)
		r.Post("/", h.createPart)
		r.Get("/{id}", h.getPart)
		r.Put("/{id}", h.updatePart)
		r.Delete("/{id}", h.deletePart)
	})
}

/*──────────────────────────── vehicles ─────────────────────────────────────*/

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	rows, err := h.vehicles.All(r.Context())
	if err != nil {
		rest.Fail(w, "vehicles.list", "Vehicle not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, rows)
}

func (h *Handler) getVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "vehicles.get", "", err)
		return
	}
	vehicle, err := h.vehicles.ByID(r.Context(), id)
	if err != nil {
		rest.Fail(w, "vehicles.get", "Vehicle not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, vehicle)
}

func (h *Handler) createVehicle(w http.ResponseWriter, r *http.Request) {
	var sub VehicleSubmission
	if err := rest.Decode(r, &sub); err != nil {
		rest.Fail(w, "vehicles.create", "", err)
		return
	}
	if err := validate.Struct(&sub); err != nil {
		rest.Fail(w, "vehicles.create", "", err)
		return
	}

	inStock := true
	if sub.InStock != nil {
		inStock = *sub.InStock
	}
	vehicle := &Vehicle{
		Name:           sub.Name,
		Model:          sub.Model,
		Brand:          sub.Brand,
		Category:       sub.Category,
		Price:          *sub.Price,
		Description:    sub.Description,
		Specifications: sub.Specifications,
		Images:         sub.Images,
		InStock:        inStock,
		Featured:       sub.Featured,
	}
	if err := h.vehicles.Insert(r.Context(), vehicle); err != nil {
		rest.Fail(w, "vehicles.create", "", err)
		return
	}

	zap.S().Infow("vehicle created", "id", vehicle.ID, "brand", vehicle.Brand, "model", vehicle.Model)
	rest.JSON(w, http.StatusCreated, vehicle)
}

func (h *Handler) updateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "vehicles.update", "", err)
		return
	}

	var patch VehiclePatch
	if err := rest.Decode(r, &patch); err != nil {
		rest.Fail(w, "vehicles.update", "", err)
		return
	}

	vehicle, err := h.vehicles.ByID(r.Context(), id)
	if err != nil {
		rest.Fail(w, "vehicles.update", "Vehicle not found", err)
		return
	}

	patch.Apply(vehicle)
	if err := h.vehicles.Update(r.Context(), vehicle); err != nil {
		rest.Fail(w, "vehicles.update", "Vehicle not found", err)
		return
	}

	zap.S().Infow("vehicle updated", "id", vehicle.ID)
	rest.JSON(w, http.StatusOK, vehicle)
}

func (h *Handler) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "vehicles.delete", "", err)
		return
	}
	if err := h.vehicles.Delete(r.Context(), id); err != nil {
		rest.Fail(w, "vehicles.delete", "Vehicle not found", err)
		return
	}

	zap.S().Infow("vehicle deleted", "id", id)
	rest.Message(w, http.StatusOK, "Vehicle deleted")
}

/*──────────────────────────── spare parts ──────────────────────────────────*/

func (h *Handler) listParts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.parts.All(r.Context())
	if err != nil {
		rest.Fail(w, "spare_parts.list", "Spare part not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, rows)
}

func (h *Handler) getPart(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "spare_parts.get", "", err)
		return
	}
	part, err := h.parts.ByID(r.Context(), id)
	if err != nil {
		rest.Fail(w, "spare_parts.get", "Spare part not found", err)
		return
	}
	rest.JSON(w, http.StatusOK, part)
}

func (h *Handler) createPart(w http.ResponseWriter, r *http.Request) {
	var sub SparePartSubmission
	if err := rest.Decode(r, &sub); err != nil {
		rest.Fail(w, "spare_parts.create", "", err)
		return
	}
	if err := validate.Struct(&sub); err != nil {
		rest.Fail(w, "spare_parts.create", "", err)
		return
	}

	inStock := true
	if sub.InStock != nil {
		inStock = *sub.InStock
	}
	part := &SparePart{
		Name:             sub.Name,
		PartNumber:       sub.PartNumber,
		Category:         sub.Category,
		CompatibleModels: sub.CompatibleModels,
		Price:            *sub.Price,
		Description:      sub.Description,
		Images:           sub.Images,
		InStock:          inStock,
		Featured:         sub.Featured,
	}
	if err := h.parts.Insert(r.Context(), part); err != nil {
		rest.Fail(w, "spare_parts.create", "", err)
		return
	}

	zap.S().Infow("spare part created", "id", part.ID, "part_number", part.PartNumber)
	rest.JSON(w, http.StatusCreated, part)
}

func (h *Handler) updatePart(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "spare_parts.update", "", err)
		return
	}

	var patch SparePartPatch
	if err := rest.Decode(r, &patch); err != nil {
		rest.Fail(w, "spare_parts.update", "", err)
		return
	}

	part, err := h.parts.ByID(r.Context(), id)
	if err != nil {
		rest.Fail(w, "spare_parts.update", "Spare part not found", err)
		return
	}

	patch.Apply(part)
	if err := h.parts.Update(r.Context(), part); err != nil {
		rest.Fail(w, "spare_parts.update", "Spare part not found", err)
		return
	}

	zap.S().Infow("spare part updated", "id", part.ID)
	rest.JSON(w, http.StatusOK, part)
}

func (h *Handler) deletePart(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		rest.Fail(w, "spare_parts.delete", "", err)
		return
	}
	if err := h.parts.Delete(r.Context(), id); err != nil {
		rest.Fail(w, "spare_parts.delete", "Spare part not found", err)
		return
	}

	zap.S().Infow("spare part deleted", "id", id)
	rest.Message(w, http.StatusOK, "Spare part deleted")
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

func parseID(r *http.Request) (uint64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", rest.ErrBadInput, raw)
	}
	return id, nil
}
