// Package prefs persists per-installation UI preferences. The only
// preference today is the theme flag backing the dark-mode toggle.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mfreitag/launchdex/internal/store"
)

// ErrNotFound is returned when a preference key has never been set.
var ErrNotFound = errors.New("preference not found")

// Theme values accepted by the API.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preference is one key-value entry.
type Preference struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository provides access to persisted preferences.
type Repository interface {
	// Get returns a single preference by key.
	Get(ctx context.Context, key string) (*Preference, error)

	// Set creates or updates a preference.
	Set(ctx context.Context, key, value string) error
}

// Compile-time interface guard.
var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a Repository and runs the prefs migrations.
func NewSQLiteRepository(ctx context.Context, st *store.SQLiteStore) (*SQLiteRepository, error) {
	if err := st.Migrate(ctx, "prefs", migrations); err != nil {
		return nil, fmt.Errorf("prefs migrations: %w", err)
	}
	return &SQLiteRepository{db: st.DB()}, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Preference, error) {
	var p Preference
	err := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM prefs WHERE key = ?`, key,
	).Scan(&p.Key, &p.Value, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get preference %q: %w", key, err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

// migrations defines the database schema for preferences.
var migrations = []store.Migration{
	{
		Version:     1,
		Description: "create prefs table",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE prefs (
					key        TEXT PRIMARY KEY,
					value      TEXT NOT NULL,
					updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)
			`)
			return err
		},
	},
}
