package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"
)

type DB struct {
	*bun.DB
	logger *zap.Logger
}

type Config struct {
	Path string
}

// NewDB opens the embedded sqlite database at cfg.Path. The handle is
// created once at startup and closed at shutdown; sqlite serializes
// concurrent writers so no application-level locking is needed.
func NewDB(cfg Config, logger *zap.Logger) (*DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	// Add query hook for debugging in development
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(false),
		bundebug.FromEnv("BUNDEBUG"),
	))

	// Test the connection
	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database opened",
		zap.String("path", cfg.Path),
	)

	return &DB{
		DB:     db,
		logger: logger,
	}, nil
}

func (d *DB) Close() error {
	d.logger.Info("closing database connection")
	return d.DB.Close()
}
