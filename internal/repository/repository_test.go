package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/nikolayk812/tipkart/internal/repository"
)

func startSQLite(ctx context.Context, dir string) (*sql.DB, string, error) {
	path := filepath.Join(dir, "catalog.db")

	conn, err := repository.Open(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("repository.Open: %w", err)
	}

	return conn, path, nil
}
