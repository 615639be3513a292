// cmd/api/main.go
//
// Pamir platform – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Load config (yaml + env overlay, Vault-resolved secrets).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Open the MySQL pool lazily and apply schema migrations.  A down
//     store is logged, not fatal: the server boots and serves 503s on
//     entity routes until connectivity returns.
//
//  5. Open the optional GeoLite2 reader for capture metadata.
//
//  6. Assemble the resource routers and serve with timeout-hardened
//     defaults until SIGINT/SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pamirmotors/pamir/internal/admin"
	"github.com/pamirmotors/pamir/internal/catalog"
	"github.com/pamirmotors/pamir/internal/config"
	"github.com/pamirmotors/pamir/internal/content"
	"github.com/pamirmotors/pamir/internal/crm"
	"github.com/pamirmotors/pamir/internal/database"
	"github.com/pamirmotors/pamir/internal/health"
	"github.com/pamirmotors/pamir/internal/inquiry"
	"github.com/pamirmotors/pamir/internal/logger"
	"github.com/pamirmotors/pamir/internal/requestinfo"
	"github.com/pamirmotors/pamir/internal/rest"
	"github.com/pamirmotors/pamir/internal/server"
)

const serverEnvPath = "/usr/local/etc/pamir/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Store connect (lazy) ────────────────────────────────────────
	//
	dsn := cfg.Database.DSN
	if strings.Contains(dsn, "%s") {
		dsn = fmt.Sprintf(dsn, cfg.Database.Password)
	}
	db, err := database.OpenLazy(dsn)
	if err != nil {
		logOut.Fatalf("open store pool: %v", err)
	}
	defer db.Close()

	if database.Up(ctx, db) {
		logOut.Infow("store online")
	} else {
		logOut.Warnw("store unreachable at boot, serving degraded")
	}

	//
	// ── 2.  Schema bootstrap ────────────────────────────────────────────
	//
	var ddl []string
	ddl = append(ddl, crm.Migrations()...)
	ddl = append(ddl, content.Migrations()...)
	ddl = append(ddl, catalog.Migrations()...)
	if err := database.Migrate(ctx, db, ddl); err != nil {
		// Degraded boot: tables appear on the next restart with a live store.
		logOut.Warnw("schema bootstrap failed", "err", err)
	}

	//
	// ── 3.  GeoIP (optional) ────────────────────────────────────────────
	//
	if err := requestinfo.InitGeo(cfg.GeoIP.DBPath); err != nil {
		logOut.Warnw("geoip disabled", "path", cfg.GeoIP.DBPath, "err", err)
	}

	//
	// ── 4.  Router: resources mounted under /api ────────────────────────
	//
	handler := rest.NewRouter(cfg.HTTP.CORSOrigins,
		crm.NewHandler(db),
		content.NewHandler(db),
		catalog.NewHandler(db),
		inquiry.NewHandler(),
		health.NewHandler(db),
		admin.NewHandler(cfg.Admin),
	)

	//
	// ── 5.  Serve until signal ─────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, handler)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.Run(srv); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Infow("shutdown complete")
}
