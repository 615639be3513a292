// internal/crm/repository.go
//
// Query helpers for leads and partner inquiries.  Thin, parameterised,
// and context-aware; callers own transaction and error policy.

package crm

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Migrations returns the idempotent DDL for both tables, applied by
// database.Migrate at boot.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS leads (
		    id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		    name       VARCHAR(255) NOT NULL DEFAULT '',
		    company    VARCHAR(255) NOT NULL DEFAULT '',
		    email      VARCHAR(255) NOT NULL DEFAULT '',
		    phone      VARCHAR(64)  NOT NULL DEFAULT '',
		    subject    VARCHAR(255) NOT NULL DEFAULT '',
		    message    TEXT,
		    status     VARCHAR(32)  NOT NULL DEFAULT 'New Inquiry',
		    created_at DATETIME     NOT NULL,
		    updated_at DATETIME     NOT NULL,
		    KEY idx_leads_created (created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS partners (
		    id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		    name       VARCHAR(255) NOT NULL DEFAULT '',
		    company    VARCHAR(255) NOT NULL DEFAULT '',
		    email      VARCHAR(255) NOT NULL DEFAULT '',
		    phone      VARCHAR(64)  NOT NULL DEFAULT '',
		    message    TEXT,
		    status     VARCHAR(32)  NOT NULL DEFAULT 'New Inquiry',
		    created_at DATETIME     NOT NULL,
		    updated_at DATETIME     NOT NULL,
		    KEY idx_partners_created (created_at)
		)`,
	}
}

/*──────────────────────────── leads ────────────────────────────────────────*/

// LeadRepo wraps the injected pool.  Tests substitute sqlmock.
type LeadRepo struct {
	db *sqlx.DB
}

func NewLeadRepo(db *sqlx.DB) *LeadRepo { return &LeadRepo{db: db} }

// All returns every lead, newest first.  The id tiebreak keeps ordering
// stable for rows created within the same second.
func (r *LeadRepo) All(ctx context.Context) ([]Lead, error) {
	const q = `
        SELECT id, name, company, email, phone, subject, message, status,
               created_at, updated_at
        FROM   leads
        ORDER  BY created_at DESC, id DESC`
	rows := make([]Lead, 0, 16)
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByID fetches a single lead or sql.ErrNoRows.
func (r *LeadRepo) ByID(ctx context.Context, id uint64) (*Lead, error) {
	const q = `
        SELECT id, name, company, email, phone, subject, message, status,
               created_at, updated_at
        FROM   leads
        WHERE  id = ?
        LIMIT  1`
	var rec Lead
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert stores l, assigning ID and both timestamps.
func (r *LeadRepo) Insert(ctx context.Context, l *Lead) error {
	now := time.Now().UTC().Truncate(time.Second)
	l.CreatedAt, l.UpdatedAt = now, now
	if l.Status == "" {
		l.Status = StatusNewInquiry
	}

	const q = `
        INSERT INTO leads (name, company, email, phone, subject, message,
                           status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		l.Name, l.Company, l.Email, l.Phone, l.Subject, l.Message,
		l.Status, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// Update persists the merged record and stamps updated_at.  The affected
// row count is not inspected: the driver reports changed rows, not
// matched rows, so a no-op write looks identical to a missing one.
// Existence is the caller's concern (ByID), and concurrent deletes
// resolve last-write-wins.
func (r *LeadRepo) Update(ctx context.Context, l *Lead) error {
	l.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	const q = `
        UPDATE leads
        SET    name = ?, company = ?, email = ?, phone = ?, subject = ?,
               message = ?, status = ?, updated_at = ?
        WHERE  id = ?`
	_, err := r.db.ExecContext(ctx, q,
		l.Name, l.Company, l.Email, l.Phone, l.Subject, l.Message,
		l.Status, l.UpdatedAt, l.ID)
	return err
}

/*──────────────────────────── partners ─────────────────────────────────────*/

// PartnerRepo has no update or delete; partner inquiries are read and
// created only.
type PartnerRepo struct {
	db *sqlx.DB
}

func NewPartnerRepo(db *sqlx.DB) *PartnerRepo { return &PartnerRepo{db: db} }

// All returns every partner inquiry, newest first.
func (r *PartnerRepo) All(ctx context.Context) ([]Partner, error) {
	const q = `
        SELECT id, name, company, email, phone, message, status,
               created_at, updated_at
        FROM   partners
        ORDER  BY created_at DESC, id DESC`
	rows := make([]Partner, 0, 16)
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert stores p, assigning ID and both timestamps.
func (r *PartnerRepo) Insert(ctx context.Context, p *Partner) error {
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Status == "" {
		p.Status = StatusNewInquiry
	}

	const q = `
        INSERT INTO partners (name, company, email, phone, message,
                              status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		p.Name, p.Company, p.Email, p.Phone, p.Message,
		p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}
