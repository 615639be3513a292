// internal/content/repository.go
//
// Query helpers for CMS content blocks.
//
// `order` is a MySQL reserved word, so the column is `sort_order`; the
// wire name stays "order" for the dashboards.

package content

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Migrations returns the idempotent DDL, applied by database.Migrate.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS content (
		    id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		    page       VARCHAR(64)  NOT NULL,
		    section    VARCHAR(64)  NOT NULL,
		    title      VARCHAR(255) NOT NULL DEFAULT '',
		    content    TEXT,
		    image_url  VARCHAR(512) NOT NULL DEFAULT '',
		    sort_order INT          NOT NULL DEFAULT 0,
		    is_active  TINYINT(1)   NOT NULL DEFAULT 1,
		    created_at DATETIME     NOT NULL,
		    updated_at DATETIME     NOT NULL,
		    KEY idx_content_page_section (page, section)
		)`,
	}
}

// Repo wraps the injected pool.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

const columns = `id, page, section, title, content, image_url, sort_order,
                 is_active, created_at, updated_at`

// All returns every block, newest first, for the CMS dashboard.
func (r *Repo) All(ctx context.Context) ([]Block, error) {
	const q = `
        SELECT ` + columns + `
        FROM   content
        ORDER  BY created_at DESC, id DESC`
	rows := make([]Block, 0, 16)
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByPage returns the active blocks for one storefront page, ascending by
// sort order.  Ties keep insertion order via the id tiebreak.
func (r *Repo) ByPage(ctx context.Context, page string) ([]Block, error) {
	const q = `
        SELECT ` + columns + `
        FROM   content
        WHERE  page = ? AND is_active = TRUE
        ORDER  BY sort_order ASC, id ASC`
	rows := make([]Block, 0, 8)
	if err := r.db.SelectContext(ctx, &rows, q, page); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByPageSection returns the first active block for (page, section), or
// sql.ErrNoRows.  Nothing enforces uniqueness, so the oldest row wins.
func (r *Repo) ByPageSection(ctx context.Context, page, section string) (*Block, error) {
	const q = `
        SELECT ` + columns + `
        FROM   content
        WHERE  page = ? AND section = ? AND is_active = TRUE
        ORDER  BY id ASC
        LIMIT  1`
	var rec Block
	if err := r.db.GetContext(ctx, &rec, q, page, section); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ByID fetches a single block regardless of active flag (the CMS edits
// inactive blocks too), or sql.ErrNoRows.
func (r *Repo) ByID(ctx context.Context, id uint64) (*Block, error) {
	const q = `
        SELECT ` + columns + `
        FROM   content
        WHERE  id = ?
        LIMIT  1`
	var rec Block
	if err := r.db.GetContext(ctx, &rec, q, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert stores b, assigning ID and both timestamps.
func (r *Repo) Insert(ctx context.Context, b *Block) error {
	now := time.Now().UTC().Truncate(time.Second)
	b.CreatedAt, b.UpdatedAt = now, now

	const q = `
        INSERT INTO content (page, section, title, content, image_url,
                             sort_order, is_active, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.Page, b.Section, b.Title, b.Body, b.ImageURL,
		b.Order, b.IsActive, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// Update persists the merged block and stamps updated_at.  The affected
// row count is not inspected: the driver reports changed rows, so a
// no-op write is indistinguishable from a missing row.  ByID owns the
// 404 decision.
func (r *Repo) Update(ctx context.Context, b *Block) error {
	b.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	const q = `
        UPDATE content
        SET    page = ?, section = ?, title = ?, content = ?, image_url = ?,
               sort_order = ?, is_active = ?, updated_at = ?
        WHERE  id = ?`
	_, err := r.db.ExecContext(ctx, q,
		b.Page, b.Section, b.Title, b.Body, b.ImageURL,
		b.Order, b.IsActive, b.UpdatedAt, b.ID)
	return err
}

// Delete removes the block, or returns sql.ErrNoRows when absent.
func (r *Repo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM content WHERE id = ?`, id)
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
