package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"list-authors/config"
	"list-authors/db"
)

// Open connects the backend named by cfg.Driver. SQL backends are migrated
// before use.
func Open(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	switch cfg.Driver {
	case db.DriverMongo:
		if err := db.InitMongo(ctx, cfg); err != nil {
			return nil, fmt.Errorf("init mongo: %w", err)
		}
		return &Store{
			Authors: NewMongoAuthorRepository(db.Database()),
			Posts:   NewMongoPostRepository(db.Database()),
			Ping:    db.PingMongo,
			Close: func(ctx context.Context) error {
				return db.Client().Disconnect(ctx)
			},
		}, nil
	case db.DriverSQLite, db.DriverPostgres:
		conn, err := db.OpenSQL(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, conn, cfg.Driver); err != nil {
			conn.Close()
			return nil, err
		}
		return NewSQLStore(conn, cfg.Driver), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// NewSQLStore wraps an already migrated connection.
func NewSQLStore(conn *sql.DB, driver string) *Store {
	return &Store{
		Authors: NewSQLAuthorRepository(conn, driver),
		Posts:   NewSQLPostRepository(conn, driver),
		Ping:    conn.PingContext,
		Close:   func(context.Context) error { return conn.Close() },
	}
}
