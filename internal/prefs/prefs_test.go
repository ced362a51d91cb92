package prefs_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/apps/go-server/assets"
	"github.com/robalobadob/pokedle/apps/go-server/internal/database"
	"github.com/robalobadob/pokedle/apps/go-server/internal/prefs"
	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

func sqlStore(t *testing.T) prefs.Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := assets.Migrations()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, migrations))
	return prefs.NewSQLStore(db)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("disk on fire") }

func TestThemeRoundTrip(t *testing.T) {
	stores := map[string]func(t *testing.T) prefs.Store{
		"memory": func(*testing.T) prefs.Store { return prefs.NewMemoryStore() },
		"sqlite": sqlStore,
	}

	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st := mk(t)

			id, err := prefs.LoadTheme(ctx, st)
			require.NoError(t, err)
			assert.Equal(t, theme.Default, id)

			require.NoError(t, prefs.SaveTheme(ctx, st, theme.Pokedex))
			id, err = prefs.LoadTheme(ctx, st)
			require.NoError(t, err)
			assert.Equal(t, theme.Pokedex, id)

			require.NoError(t, prefs.SaveTheme(ctx, st, theme.Default))
			id, err = prefs.LoadTheme(ctx, st)
			require.NoError(t, err)
			assert.Equal(t, theme.Default, id)

			assert.Error(t, prefs.SaveTheme(ctx, st, theme.ID("neon")))
		})
	}
}

func TestLoadThemeFallsBackOnGarbage(t *testing.T) {
	ctx := context.Background()
	st := prefs.NewMemoryStore()
	require.NoError(t, st.Set(ctx, prefs.ThemeKey, "neon"))

	id, err := prefs.LoadTheme(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, theme.Default, id)
}

func TestStorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	id, err := prefs.LoadTheme(ctx, failingStore{})
	assert.Error(t, err)
	assert.Equal(t, theme.Default, id)

	assert.Error(t, prefs.SaveTheme(ctx, failingStore{}, theme.Pokedex))
}
