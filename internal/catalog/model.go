// internal/catalog/model.go
//
// Product catalog records: vehicles and spare parts.
//
// Both are flat rows with JSON columns for the list/map fields.  Price is
// stored as DECIMAL and carried as float64 on the wire, matching the
// legacy contract.  `inStock` and `featured` drive storefront filtering
// only; no inventory counts exist.

package catalog

import "time"

//
// Vehicle
//

// Vehicle mirrors one row in the `vehicles` table.
type Vehicle struct {
	ID             uint64     `db:"id"             json:"id"`
	Name           string     `db:"name"           json:"name"`
	Model          string     `db:"model"          json:"model"`
	Brand          string     `db:"brand"          json:"brand"`
	Category       string     `db:"category"       json:"category"`
	Price          float64    `db:"price"          json:"price"`
	Description    string     `db:"description"    json:"description"`
	Specifications StringMap  `db:"specifications" json:"specifications"`
	Images         StringList `db:"images"         json:"images"`
	InStock        bool       `db:"in_stock"       json:"inStock"`
	Featured       bool       `db:"featured"       json:"featured"`
	CreatedAt      time.Time  `db:"created_at"     json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at"     json:"updatedAt"`
}

// VehicleSubmission is the create payload.  Required fields match the
// legacy schema; InStock defaults to true when absent.
type VehicleSubmission struct {
	Name           string     `json:"name"     validate:"required"`
	Model          string     `json:"model"    validate:"required"`
	Brand          string     `json:"brand"    validate:"required"`
	Category       string     `json:"category" validate:"required"`
	Price          *float64   `json:"price"    validate:"required"`
	Description    string     `json:"description"`
	Specifications StringMap  `json:"specifications"`
	Images         StringList `json:"images"`
	InStock        *bool      `json:"inStock"`
	Featured       bool       `json:"featured"`
}

// VehiclePatch is the update payload; only submitted fields overwrite.
type VehiclePatch struct {
	Name           *string     `json:"name"`
	Model          *string     `json:"model"`
	Brand          *string     `json:"brand"`
	Category       *string     `json:"category"`
	Price          *float64    `json:"price"`
	Description    *string     `json:"description"`
	Specifications *StringMap  `json:"specifications"`
	Images         *StringList `json:"images"`
	InStock        *bool       `json:"inStock"`
	Featured       *bool       `json:"featured"`
}

// Apply merges the submitted fields over v.  The caller stamps UpdatedAt.
func (p *VehiclePatch) Apply(v *Vehicle) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Brand != nil {
		v.Brand = *p.Brand
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.Price != nil {
		v.Price = *p.Price
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Specifications != nil {
		v.Specifications = *p.Specifications
	}
	if p.Images != nil {
		v.Images = *p.Images
	}
	if p.InStock != nil {
		v.InStock = *p.InStock
	}
	if p.Featured != nil {
		v.Featured = *p.Featured
	}
}

//
// SparePart
//

// SparePart mirrors one row in the `spare_parts` table.
type SparePart struct {
	ID               uint64     `db:"id"                json:"id"`
	Name             string     `db:"name"              json:"name"`
	PartNumber       string     `db:"part_number"       json:"partNumber"`
	Category         string     `db:"category"          json:"category"`
	CompatibleModels StringList `db:"compatible_models" json:"compatibleModels"`
	Price            float64    `db:"price"             json:"price"`
	Description      string     `db:"description"       json:"description"`
	Images           StringList `db:"images"            json:"images"`
	InStock          bool       `db:"in_stock"          json:"inStock"`
	Featured         bool       `db:"featured"          json:"featured"`
	CreatedAt        time.Time  `db:"created_at"        json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at"        json:"updatedAt"`
}

// SparePartSubmission is the create payload.
type SparePartSubmission struct {
	Name             string     `json:"name"       validate:"required"`
	PartNumber       string     `json:"partNumber" validate:"required"`
	Category         string     `json:"category"   validate:"required"`
	CompatibleModels StringList `json:"compatibleModels"`
	Price            *float64   `json:"price"      validate:"required"`
	Description      string     `json:"description"`
	Images           StringList `json:"images"`
	InStock          *bool      `json:"inStock"`
	Featured         bool       `json:"featured"`
}

// SparePartPatch is the update payload; only submitted fields overwrite.
type SparePartPatch struct {
	Name             *string     `json:"name"`
	PartNumber       *string     `json:"partNumber"`
	Category         *string     `json:"category"`
	CompatibleModels *StringList `json:"compatibleModels"`
	Price            *float64    `json:"price"`
	Description      *string     `json:"description"`
	Images           *StringList `json:"images"`
	InStock          *bool       `json:"inStock"`
	Featured         *bool       `json:"featured"`
}

// Apply merges the submitted fields over s.  The caller stamps UpdatedAt.
func (p *SparePartPatch) Apply(s *SparePart) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.PartNumber != nil {
		s.PartNumber = *p.PartNumber
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.CompatibleModels != nil {
		s.CompatibleModels = *p.CompatibleModels
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Images != nil {
		s.Images = *p.Images
	}
	if p.InStock != nil {
		s.InStock = *p.InStock
	}
	if p.Featured != nil {
		s.Featured = *p.Featured
	}
}
