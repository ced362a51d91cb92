// internal/prefs/prefs.go
//
// User preference storage.
//
// The game keeps exactly one preference: the active theme, stored under
// ThemeKey. It is read at startup (falling back to the default theme when
// the key is absent or holds an unknown value) and written on every change.
//
// Implementations:
//   - memory (this package): process-local map, used in tests and --no-db runs.
//   - sqlite (sqlite.go):    the preferences table created by assets/sql.

package prefs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

// ThemeKey is the key holding the selected theme identifier.
const ThemeKey = "pokedle_theme"

// Store is a small string key-value store.
type Store interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error
}

// LoadTheme reads the saved theme. Absent or unknown values yield
// theme.Default; only storage failures are returned as errors.
func LoadTheme(ctx context.Context, st Store) (theme.ID, error) {
	v, ok, err := st.Get(ctx, ThemeKey)
	if err != nil {
		return theme.Default, fmt.Errorf("load theme: %w", err)
	}
	if !ok {
		return theme.Default, nil
	}
	id, err := theme.Parse(v)
	if err != nil {
		log.Warn().Str("value", v).Msg("ignoring stored theme")
		return theme.Default, nil
	}
	return id, nil
}

// SaveTheme validates and persists id.
func SaveTheme(ctx context.Context, st Store, id theme.ID) error {
	if !id.Valid() {
		return fmt.Errorf("save theme: unknown theme %q", id)
	}
	if err := st.Set(ctx, ThemeKey, string(id)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
