package migrate

import (
	"context"
	"fmt"

	"github.com/autonexhq/autonex-backend/pkg/config"
	"github.com/autonexhq/autonex-backend/pkg/db"
	"github.com/autonexhq/autonex-backend/pkg/kv"
	"github.com/autonexhq/autonex-backend/pkg/logger"
)

// MaybeRunDev executes migrations automatically when the app runs in dev mode
// with the auto-migrate flag enabled. Postgres goes through goose; the sqlite
// driver has no goose migrations and relies on GORM schema creation.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.DB.Driver == config.DriverSQLite {
		logg.Info(ctx, "running GORM auto-migration (sqlite)")
		if err := client.DB().WithContext(ctx).AutoMigrate(&kv.Record{}); err != nil {
			return fmt.Errorf("sqlite auto-migrate: %w", err)
		}
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
