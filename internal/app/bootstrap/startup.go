// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/ukrconnect/internal/app/resources"
	"github.com/dalemusser/ukrconnect/internal/app/system/seed"
	"github.com/dalemusser/ukrconnect/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It registers the shared templates, applies the configured database
// deadlines and, when seed_on_startup is set, loads the starter content
// into an empty database.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Medium: appCfg.QueryTimeout,
		Long:   appCfg.SeedTimeout,
	})
	cur := timeouts.Current()
	logger.Info("database deadlines",
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("long", cur.Long))

	if !appCfg.SeedOnStartup {
		return nil
	}
	seedCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()
	report, err := seed.Run(seedCtx, deps.MongoDatabase, logger)
	if err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return err
	}
	if !report.Skipped {
		logger.Info("seeded starter content", zap.Int("records", report.Total()))
	}
	return nil
}
