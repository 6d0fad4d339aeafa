package service

import (
	"context"
	"database/sql"
	"fmt"
)

// inTx runs fn as one unit of work. The transaction commits when fn returns
// nil and rolls back otherwise, so callers never observe a partial write.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return txFailure(fmt.Errorf("could not begin transaction: %w", err))
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return txFailure(err)
	}

	if err := tx.Commit(); err != nil {
		return txFailure(fmt.Errorf("could not commit transaction: %w", err))
	}
	return nil
}
