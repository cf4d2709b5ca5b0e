package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nikolayk812/tipkart/internal/migrations"
	_ "modernc.org/sqlite"
)

// Open opens the sqlite catalog file at path and applies migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("conn.PingContext: %w", err)
	}

	if _, err := migrations.Apply(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrations.Apply: %w", err)
	}

	return conn, nil
}
