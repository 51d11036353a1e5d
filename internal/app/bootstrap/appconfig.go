// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (UKRCONNECT_*), config
// files, or command-line flags (loaded in LoadConfig). Framework-level
// settings such as ports, TLS, log level and CORS live in WAFFLE's
// CoreConfig instead.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: ukrconnect-session)
	SessionDomain string // Cookie domain (blank means current host)
	SessionMaxAge time.Duration

	// Peers allowed to set the client address via forwarding headers.
	// Empty means every request is keyed on its socket address.
	TrustedProxies string

	// Admin area. Empty hash leaves /admin open.
	AdminPasswordHash string // bcrypt hash of the admin password

	// Content behavior
	SearchPerTypeLimit int64 // cap on results per entity type in site search
	PastEventsLimit    int64 // cap on past events listed on /events

	// Reference data
	SeedOnStartup bool // load starter content into an empty database at startup

	// Database deadlines
	QueryTimeout time.Duration // list and search queries
	SeedTimeout  time.Duration // whole seed run
}
