package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/angelmondragon/stockroom/pkg/config"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Dir returns the embedded migration directory for the configured driver.
func Dir(cfg config.DBConfig) string {
	if cfg.IsSQLite() {
		return "migrations/sqlite"
	}
	return "migrations/postgres"
}

func dialect(cfg config.DBConfig) string {
	if cfg.IsSQLite() {
		return "sqlite3"
	}
	return "postgres"
}

// Run executes a standard goose command against the embedded migrations.
func Run(ctx context.Context, db *sql.DB, cfg config.DBConfig, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect(cfg)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, Dir(cfg), args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
