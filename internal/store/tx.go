package store

import (
	"context"
	"database/sql"
	"fmt"
)

// withTx runs fn inside a transaction on the records table. Single-record
// writes go through PutRecord directly; this exists for SaveProgress, which
// must commit the game-state and achievement records together.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
