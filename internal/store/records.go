package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Fixed record keys. Each record is one JSON object; there is no schema
// versioning, so readers fall back to defaults on anything they cannot parse.
const (
	KeyOnboarding   = "onboarding"
	KeyTutorial     = "tutorial"
	KeyGameState    = "game_state"
	KeyAchievements = "achievements"
)

// Store is a flat JSON record store over a single SQLite table.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

func (s *Store) DB() *sql.DB { return s.db }

// GetRecord unmarshals the record at key into dest, a non-nil pointer.
// Returns false when the record does not exist. Malformed JSON is treated as
// missing and logged; dest is left untouched so the caller keeps its
// defaults.
func (s *Store) GetRecord(ctx context.Context, key string, dest any) (bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("record get %s: %w", key, err)
	}
	// Decode into a scratch value first: Unmarshal fills fields up to the
	// point of a type error, and a half-decoded record must not leak into
	// the caller's defaults.
	scratch := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal([]byte(raw), scratch.Interface()); err != nil {
		s.log.Warn("malformed record, falling back to defaults",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	reflect.ValueOf(dest).Elem().Set(scratch.Elem())
	return true, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx, so single-record puts
// and the SaveProgress transaction share one upsert.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putRecord(ctx context.Context, ex execer, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("record marshal %s: %w", key, err)
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record put %s: %w", key, err)
	}
	return nil
}

// PutRecord upserts the record at key as JSON.
func (s *Store) PutRecord(ctx context.Context, key string, value any) error {
	return putRecord(ctx, s.db, key, value)
}

// DeleteRecord removes the record at key; deleting a missing record is fine.
func (s *Store) DeleteRecord(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("record delete %s: %w", key, err)
	}
	return nil
}
