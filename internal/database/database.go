// Package database centralises sqlx connection helpers.  The default driver
// is go-sql-driver/mysql, which also works with MariaDB and Cockroach when
// configured for the MySQL wire protocol.
//
// Public entry points:
//
//	Open(dsn)                              – pool with conservative sizes;
//	                                         pings before returning.
//	OpenLazy(dsn)                          – same pool, no ping; used by the
//	                                         API server, which must start and
//	                                         serve even when the store is down.
//	OpenWithOptions(dsn, maxOpen, maxIdle) – fine-grained control.
//	Up(ctx, db)                            – cheap reachability probe for the
//	                                         health endpoint.
//
// Callers should Close() the returned *sqlx.DB when no longer needed.
package database

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open returns a *sqlx.DB with sane defaults: 15 max open, 5 idle, and a
// 30-minute connection lifetime.  It pings the database before returning so
// callers can fail fast during bootstrap.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := OpenLazy(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenLazy builds the pool without a connectivity check.  The API server
// uses this at boot so a down store degrades requests to 503 instead of
// refusing to start; database/sql reconnects on its own once the store
// is back.
func OpenLazy(dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(dsn, 15, 5)
}

// OpenWithOptions lets callers tune maxOpen and maxIdle per pool.
func OpenWithOptions(dsn string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Up reports current store reachability.  The probe is bounded by its own
// two-second deadline so a wedged store cannot stall the health endpoint.
func Up(ctx context.Context, db *sqlx.DB) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx) == nil
}
