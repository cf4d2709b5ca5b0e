package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// Apply runs the embedded migrations not yet recorded in the goose version
// table and returns how many it applied.
func Apply(ctx context.Context, conn *sql.DB) (int, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, files)
	if err != nil {
		return 0, fmt.Errorf("goose.NewProvider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("provider.Up: %w", err)
	}

	return len(results), nil
}

// Version reports the latest applied migration version.
func Version(ctx context.Context, conn *sql.DB) (int64, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, files)
	if err != nil {
		return 0, fmt.Errorf("goose.NewProvider: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("provider.GetDBVersion: %w", err)
	}

	return version, nil
}
