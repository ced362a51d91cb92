// internal/prefs/sqlite.go
//
// sqlite-backed preference store over the preferences table
// (assets/sql/001_preferences.sql). Set is an upsert that stamps updated_at.

package prefs

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLStore keeps preferences in the preferences table.
type SQLStore struct{ db *sql.DB }

// NewSQLStore wraps a migrated database handle.
func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// Get reads key; a missing row is reported as ok=false.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key=?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set upserts key.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO preferences (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
