// internal/config/model.go
//
// Typed configuration model for the Pamir platform.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                         – dotenv values,
//   • `conf/global.yaml`                      – primary static file,
//   • `PAMIR_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *after* unmarshalling, so handlers never see
// Vault URIs—only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.  CORSOrigins is the exact allow-list
// handed to the CORS middleware; the storefront and the two admin
// dashboards each appear here once.
type HTTP struct {
	ListenAddr  string   `koanf:"listen_addr" validate:"required,hostname_port"`
	CORSOrigins []string `koanf:"cors_origins"`
}

//
// Database section
//

// Database holds the MySQL DSN and its secret.
//
// The *template* (`DSN`) is kept in YAML so operators can tweak host,
// port, or flags without touching Vault.  The *secret* portion
// (`Password`) may be a `vault:` URI, resolved at load time, keeping
// credentials out of flat files and git history.  The DSN may carry a
// single `%s` verb where the password is spliced in.
type Database struct {
	DSN      string `koanf:"dsn"      validate:"required"`
	Password string `koanf:"password"`
}

//
// Admin section
//

// Admin carries the dashboard credential pair.  This is a single static
// check, not an account system; defaults mirror the legacy deployment.
type Admin struct {
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password" validate:"required"`
}

//
// GeoIP section
//

// GeoIP points at an optional GeoLite2-City database used to annotate
// inquiry and lead submissions.  Empty path disables the lookup.
type GeoIP struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or PAMIR_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // PAMIR_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Admin    Admin    `koanf:"admin"`
	GeoIP    GeoIP    `koanf:"geoip"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
