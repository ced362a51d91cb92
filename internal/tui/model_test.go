package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
	"github.com/robalobadob/pokedle/apps/go-server/internal/prefs"
	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

func newModel(t *testing.T, secret string) (Model, prefs.Store) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	sess, err := game.NewSession(cat, game.FixedPicker(secret))
	require.NoError(t, err)
	pf := prefs.NewMemoryStore()
	m, err := New(sess, pf, Options{})
	require.NoError(t, err)
	return m, pf
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestNewStartsActive(t *testing.T) {
	m, _ := newModel(t, "mew")
	assert.Equal(t, game.StatusActive, m.session.Status())
	assert.Equal(t, theme.Default, m.theme)
	assert.Empty(t, m.rows)
	assert.Len(t, m.matches, 6)
	assert.Contains(t, m.View(), "POKEDLE")
}

func TestTypingNarrowsSuggestions(t *testing.T) {
	m, _ := newModel(t, "mew")
	m = typeText(t, m, "char")

	names := make([]string, 0, len(m.matches))
	for _, e := range m.matches {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"CHARMANDER", "CHARMELEON", "CHARIZARD"}, names)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "CHARMELEON", m.input.Value())
}

func TestSubmitAddsRowAndExcludesName(t *testing.T) {
	m, _ := newModel(t, "bulbasaur")
	m = typeText(t, m, "charmander")
	m, cmd := enter(t, m)
	assert.Nil(t, cmd)

	require.Len(t, m.rows, 1)
	assert.Equal(t, "CHARMANDER", m.rows[0].Name)
	assert.Equal(t, game.VerdictHigher, m.rows[0].Cells[3].Verdict)
	assert.Equal(t, "⬆", m.rows[0].Cells[3].Arrow)
	assert.Empty(t, m.input.Value())
	assert.False(t, m.isError)

	m = typeText(t, m, "char")
	for _, e := range m.matches {
		assert.NotEqual(t, "CHARMANDER", e.Name)
	}
}

func TestSubmitErrorsKeepState(t *testing.T) {
	m, _ := newModel(t, "mew")

	m = typeText(t, m, "missingno")
	m, _ = enter(t, m)
	assert.True(t, m.isError)
	assert.Equal(t, "Pokémon not found!", m.status)
	assert.Empty(t, m.rows)

	m.input.SetValue("")
	m = typeText(t, m, "pikachu")
	m, _ = enter(t, m)
	require.Len(t, m.rows, 1)

	m = typeText(t, m, "PIKACHU")
	m, _ = enter(t, m)
	assert.True(t, m.isError)
	assert.Equal(t, "You've already guessed that Pokémon!", m.status)
	assert.Len(t, m.rows, 1)
	assert.Equal(t, 1, m.session.Guesses())
}

func TestWinRevealsAfterTickAndRestarts(t *testing.T) {
	m, _ := newModel(t, "mew")
	m = typeText(t, m, "mew")
	m, cmd := enter(t, m)
	require.NotNil(t, cmd)
	assert.Equal(t, game.StatusWon, m.session.Status())
	assert.False(t, m.revealed)

	// Typing is ignored once won.
	m = typeText(t, m, "abc")
	assert.Empty(t, m.input.Value())

	round := m.session.ID()
	m, _ = send(t, m, revealMsg{round: "stale"})
	assert.False(t, m.revealed)
	m, _ = send(t, m, revealMsg{round: round})
	assert.True(t, m.revealed)
	assert.Contains(t, m.View(), "MEW")

	m, _ = enter(t, m)
	assert.Equal(t, game.StatusActive, m.session.Status())
	assert.NotEqual(t, round, m.session.ID())
	assert.False(t, m.revealed)
	assert.Empty(t, m.rows)
}

func TestToggleThemePersistsAndReplays(t *testing.T) {
	m, pf := newModel(t, "mew")
	for _, name := range []string{"squirtle", "pikachu"} {
		m = typeText(t, m, name)
		m, _ = enter(t, m)
	}
	require.Len(t, m.rows, 2)
	before := m.rows

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.Pokedex, m.theme)

	stored, err := prefs.LoadTheme(context.Background(), pf)
	require.NoError(t, err)
	assert.Equal(t, theme.Pokedex, stored)

	require.Len(t, m.rows, 2)
	for i := range before {
		assert.Equal(t, before[i].Name, m.rows[i].Name)
		assert.Equal(t, before[i].Cells, m.rows[i].Cells)
		assert.NotEqual(t, before[i].ImageURL, m.rows[i].ImageURL)
	}
	assert.Equal(t, 2, m.session.Guesses())
}

func TestStoredThemeIsRestored(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	sess, err := game.NewSession(cat, game.FixedPicker("mew"))
	require.NoError(t, err)

	pf := prefs.NewMemoryStore()
	require.NoError(t, prefs.SaveTheme(context.Background(), pf, theme.Pokedex))

	m, err := New(sess, pf, Options{})
	require.NoError(t, err)
	assert.Equal(t, theme.Pokedex, m.theme)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, "mew")
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
