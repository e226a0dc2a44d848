package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"

	// Register SQL drivers with database/sql.
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"list-authors/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

var gooseInitMu sync.Mutex

// gooseDialect maps a storage driver to goose's dialect name.
func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", nil
	case DriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("db: unsupported sql driver %q", driver)
	}
}

// OpenSQL opens and pings a SQL store for cfg.Driver.
func OpenSQL(ctx context.Context, cfg config.StorageConfig) (*sql.DB, error) {
	if _, err := gooseDialect(cfg.Driver); err != nil {
		return nil, err
	}
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == DriverSQLite {
		// a single connection keeps ":memory:" databases shared
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: ping %s: %w", cfg.Driver, err)
	}
	return conn, nil
}

// Migrate applies the embedded migrations for driver.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	sub, err := fs.Sub(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("db: migrations for %s: %w", driver, err)
	}

	gooseInitMu.Lock()
	defer func() {
		goose.SetBaseFS(nil)
		gooseInitMu.Unlock()
	}()
	goose.SetBaseFS(sub)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("db: set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("db: apply migrations: %w", err)
	}
	return nil
}
