// internal/database/migrate.go
//
// Boot-time schema bootstrap.
//
// Each domain package exports a Migrations() []string of idempotent DDL
// (CREATE TABLE IF NOT EXISTS …).  Migrate executes them in order inside
// one call at startup.  There is no version table; the statements must be
// safe to replay.

package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate applies every statement in order.  A down store is reported as
// an error; the caller decides whether to continue serving degraded.
func Migrate(ctx context.Context, db *sqlx.DB, stmts []string) error {
	for i, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
