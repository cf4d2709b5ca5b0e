package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nikolayk812/tipkart/internal/db"
)

func withTx[T any](ctx context.Context, conn *sql.DB, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("conn.BeginTx: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback()
			if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(q.WithTx(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}
