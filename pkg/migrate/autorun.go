package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/stockroom/pkg/config"
	"github.com/angelmondragon/stockroom/pkg/db"
	"github.com/angelmondragon/stockroom/pkg/logger"
)

// MaybeRun brings the schema up to date on startup when the auto-migrate
// flag is enabled. Migrations are idempotent, so running on every boot is
// safe.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.DB.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"driver": cfg.DB.Driver, "dir": Dir(cfg.DB)})
	logg.Info(ctx, "running Goose migrations")

	if err := Run(ctx, sqlDB, cfg.DB, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "Goose migrations completed")
	return nil
}
