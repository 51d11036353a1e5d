// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"github.com/dalemusser/ukrconnect/internal/app/system/ratelimit"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ukrconnect.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: UKRCONNECT_MONGO_URI, UKRCONNECT_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "ukrconnect", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: auth.DefaultSessionName, Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime (e.g., 24h, 30m)"},

	// Network
	{Name: "trusted_proxies", Default: "", Desc: "Comma-separated proxy IPs or CIDRs whose X-Forwarded-For is believed"},

	// Admin
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the admin password; empty leaves /admin open"},

	// Content
	{Name: "search_per_type_limit", Default: 10, Desc: "Maximum site search results per content type"},
	{Name: "past_events_limit", Default: 10, Desc: "Maximum past events shown on the events page"},

	// Reference data
	{Name: "seed_on_startup", Default: false, Desc: "Load starter content at startup when the database is empty"},

	// Deadlines
	{Name: "query_timeout", Default: "10s", Desc: "Deadline for list and search queries"},
	{Name: "seed_timeout", Default: "60s", Desc: "Deadline for the whole seed run"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config
// files, environment variables (WAFFLE_* for core, UKRCONNECT_* for app)
// and flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "UKRCONNECT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		TrustedProxies: appValues.String("trusted_proxies"),

		AdminPasswordHash: appValues.String("admin_password_hash"),

		SearchPerTypeLimit: int64(appValues.Int("search_per_type_limit")),
		PastEventsLimit:    int64(appValues.Int("past_events_limit")),

		SeedOnStartup: appValues.Bool("seed_on_startup"),

		QueryTimeout: appValues.Duration("query_timeout", timeouts.DefaultMedium),
		SeedTimeout:  appValues.Duration("seed_timeout", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI and admin hash are checked here so that typos fail
// before any connection is attempted.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.AdminPasswordHash != "" {
		if err := auth.ValidatePasswordHash(appCfg.AdminPasswordHash); err != nil {
			return err
		}
	}
	if _, err := ratelimit.ParseTrustedProxies(appCfg.TrustedProxies); err != nil {
		return err
	}
	if appCfg.SearchPerTypeLimit < 1 {
		return fmt.Errorf("search_per_type_limit must be at least 1, got %d", appCfg.SearchPerTypeLimit)
	}
	if appCfg.PastEventsLimit < 1 {
		return fmt.Errorf("past_events_limit must be at least 1, got %d", appCfg.PastEventsLimit)
	}
	if coreCfg != nil && coreCfg.Env == "prod" && len(appCfg.SessionKey) < 32 {
		return fmt.Errorf("session_key must be at least 32 characters in prod")
	}
	return nil
}
