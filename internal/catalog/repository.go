// internal/catalog/repository.go
//
// Query helpers for the vehicle and spare-part catalog.

package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Migrations returns the idempotent DDL for both tables.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
		    id             BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		    name           VARCHAR(255)  NOT NULL,
		    model          VARCHAR(255)  NOT NULL,
		    brand          VARCHAR(255)  NOT NULL,
		    category       VARCHAR(128)  NOT NULL,
		    price          DECIMAL(12,2) NOT NULL,
		    description    TEXT,
		    specifications JSON,
		    images         JSON,
		    in_stock       TINYINT(1)    NOT NULL DEFAULT 1,
		    featured       TINYINT(1)    NOT NULL DEFAULT 0,
		    created_at     DATETIME      NOT NULL,
		    updated_at     DATETIME      NOT NULL,
		    KEY idx_vehicles_created (created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS spare_parts (
		    id                BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		    name              VARCHAR(255)  NOT NULL,
		    part_number       VARCHAR(128)  NOT NULL,
		    category          VARCHAR(128)  NOT NULL,
		    compatible_models JSON,
		    price             DECIMAL(12,2) NOT NULL,
		    description       TEXT,
		    images            JSON,
		    in_stock          TINYINT(1)    NOT NULL DEFAULT 1,
		    featured          TINYINT(1)    NOT NULL DEFAULT 0,
		    created_at        DATETIME      NOT NULL,
		    updated_at        DATETIME      NOT NULL,
		    KEY idx_spare_parts_created (created_at)
		)`,
	}
}

/*──────────────────────────── vehicles ─────────────────────────────────────*/

const vehicleColumns = `id, name, model, brand, category, price, description,
                        specifications, images, in_stock, featured,
                        created_at, updated_at`

// VehicleRepo wraps the injected pool.
type VehicleRepo struct {
	db *sqlx.DB
}

func NewVehicleRepo(db *sqlx.DB) *VehicleRepo { return &VehicleRepo{db: db} }

// All returns every vehicle, newest first.
func (r *VehicleRepo) All(ctx context.Context) ([]Vehicle, error) {
	const q = `
        SELECT ` + vehicleColumns + `
        FROM   vehicles
        ORDER  BY created_at DESC, id DESC`
	rows := make([]Vehicle, 0, 16)
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByID fetches a single vehicle or sql.ErrNoRows.
func (r *VehicleRepo) ByID(ctx context.Context, id uint64) (*Vehicle, error) {
	const q = `
        SELECT ` + vehicleColumns + `
        FROM   vehicles
        WHERE  id = ?
        LIMIT  1`
	var rec Vehicle
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert stores v, assigning ID and both timestamps.
func (r *VehicleRepo) Insert(ctx context.Context, v *Vehicle) error {
	now := time.Now().UTC().Truncate(time.Second)
	v.CreatedAt, v.UpdatedAt = now, now

	const q = `
        INSERT INTO vehicles (name, model, brand, category, price, description,
                              specifications, images, in_stock, featured,
                              created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.Model, v.Brand, v.Category, v.Price, v.Description,
		v.Specifications, v.Images, v.InStock, v.Featured,
		v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// Update persists the merged vehicle and stamps updated_at.  Affected
// rows are not inspected; the driver counts changed rows, so a no-op
// write would read as missing.  ByID owns the 404 decision.
func (r *VehicleRepo) Update(ctx context.Context, v *Vehicle) error {
	v.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	const q = `
        UPDATE vehicles
        SET    name = ?, model = ?, brand = ?, category = ?, price = ?,
               description = ?, specifications = ?, images = ?, in_stock = ?,
               featured = ?, updated_at = ?
        WHERE  id = ?`
	_, err := r.db.ExecContext(ctx, q,
		v.Name, v.Model, v.Brand, v.Category, v.Price,
		v.Description, v.Specifications, v.Images, v.InStock,
		v.Featured, v.UpdatedAt, v.ID)
	return err
}

// Delete removes the vehicle, or returns sql.ErrNoRows when absent.
func (r *VehicleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

/*──────────────────────────── spare parts ──────────────────────────────────*/

const partColumns = `id, name, part_number, category, compatible_models, price,
                     description, images, in_stock, featured,
                     created_at, updated_at`

// SparePartRepo wraps the injected pool.
type SparePartRepo struct {
	db *sqlx.DB
}

func NewSparePartRepo(db *sqlx.DB) *SparePartRepo { return &SparePartRepo{db: db} }

// All returns every spare part, newest first.
func (r *SparePartRepo) All(ctx context.Context) ([]SparePart, error) {
	const q = `
        SELECT ` + partColumns + `
        FROM   spare_parts
        ORDER  BY created_at DESC, id DESC`
	rows := make([]SparePart, 0, 16)
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByID fetches a single spare part or sql.ErrNoRows.
func (r *SparePartRepo) ByID(ctx context.Context, id uint64) (*SparePart, error) {
	const q = `
        SELECT ` + partColumns + `
        FROM   spare_parts
        WHERE  id = ?
        LIMIT  1`
	var rec SparePart
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert stores s, assigning ID and both timestamps.
func (r *SparePartRepo) Insert(ctx context.Context, s *SparePart) error {
	now := time.Now().UTC().Truncate(time.Second)
	s.CreatedAt, s.UpdatedAt = now, now

	const q = `
        INSERT INTO spare_parts (name, part_number, category, compatible_models,
                                 price, description, images, in_stock, featured,
                                 created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.Name, s.PartNumber, s.Category, s.CompatibleModels,
		s.Price, s.Description, s.Images, s.InStock, s.Featured,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update persists the merged spare part and stamps updated_at.  Affected
// rows are not inspected, same as VehicleRepo.Update.
func (r *SparePartRepo) Update(ctx context.Context, s *SparePart) error {
	s.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	const q = `
        UPDATE spare_parts
        SET    name = ?, part_number = ?, category = ?, compatible_models = ?,
               price = ?, description = ?, images = ?, in_stock = ?,
               featured = ?, updated_at = ?
        WHERE  id = ?`
	_, err := r.db.ExecContext(ctx, q,
		s.Name, s.PartNumber, s.Category, s.CompatibleModels,
		s.Price, s.Description, s.Images, s.InStock,
		s.Featured, s.UpdatedAt, s.ID)
	return err
}

// Delete removes the spare part, or returns sql.ErrNoRows when absent.
func (r *SparePartRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM spare_parts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
