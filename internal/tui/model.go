// internal/tui/model.go
//
// Terminal presentation adapter.
//
// The Model owns no game rules: every key press maps to one Session call
// (SubmitGuess, Start, Rows, Suggest) and the grid is drawn from the
// returned rows. Theme switches persist the preference and replay the
// history so the grid is rebuilt without touching the session.

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
	"github.com/robalobadob/pokedle/apps/go-server/internal/prefs"
	"github.com/robalobadob/pokedle/apps/go-server/internal/render"
	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

// Options tunes the terminal adapter.
type Options struct {
	RevealDelay    time.Duration // pause between the winning guess and the end panel
	MaxSuggestions int           // rows of the suggestion list; default 6
	SampleEmpty    bool          // show a random sample instead of the head when the input is empty
}

// revealMsg fires after RevealDelay once the game is won.
// round ties it to the session round that produced it.
type revealMsg struct{ round string }

type keyMap struct {
	Submit  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Accept  key.Binding
	Theme   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "next")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "prev")),
		Accept:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new game")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	session *game.Session
	prefs   prefs.Store
	opts    Options
	keys    keyMap

	theme    theme.ID
	palette  theme.Palette
	input    textinput.Model
	matches  []catalog.EntityRecord
	cursor   int
	rows     []render.Row // newest first
	status   string
	isError  bool
	revealed bool
	width    int
}

// New builds a Model around an already constructed session; the session is
// started here so the first frame shows a playable game.
func New(sess *game.Session, pf prefs.Store, opts Options) (Model, error) {
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = 6
	}
	id, err := prefs.LoadTheme(context.Background(), pf)
	if err != nil {
		log.Warn().Err(err).Msg("load theme")
	}

	ti := textinput.New()
	ti.Placeholder = "type a Pokémon name…"
	ti.CharLimit = 32
	ti.Focus()

	m := Model{
		session: sess,
		prefs:   pf,
		opts:    opts,
		keys:    defaultKeys(),
		theme:   id,
		palette: theme.PaletteFor(id),
		input:   ti,
	}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update routes messages to the matching session operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case revealMsg:
		if msg.round == m.session.ID() && m.session.Status() == game.StatusWon {
			m.revealed = true
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.toggleTheme()
			return m, nil
		case key.Matches(msg, m.keys.Restart):
			if err := m.restart(); err != nil {
				m.setError(err.Error())
			}
			return m, nil
		}

		if m.session.Status() == game.StatusWon {
			// Input is disabled; enter on the end panel plays again.
			if m.revealed && key.Matches(msg, m.keys.Submit) {
				if err := m.restart(); err != nil {
					m.setError(err.Error())
				}
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.Accept):
			if len(m.matches) > 0 {
				m.input.SetValue(m.matches[m.cursor].Name)
				m.input.CursorEnd()
				m.refreshMatches()
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshMatches()
	}
	return m, cmd
}

// submit sends the typed (or highlighted) name to the session.
func (m *Model) submit() tea.Cmd {
	name := m.input.Value()
	if name == "" && len(m.matches) > 0 {
		name = m.matches[m.cursor].Name
	}

	row, err := m.session.SubmitGuess(name)
	switch {
	case errors.Is(err, game.ErrNotFound):
		m.setError("Pokémon not found!")
		return nil
	case errors.Is(err, game.ErrAlreadyGuessed):
		m.setError("You've already guessed that Pokémon!")
		return nil
	case errors.Is(err, game.ErrGameAlreadyOver):
		return nil
	case err != nil:
		m.setError(err.Error())
		return nil
	}

	m.rows = append([]render.Row{render.NewRow(row, m.theme)}, m.rows...)
	m.input.SetValue("")
	m.refreshMatches()
	m.setStatus(fmt.Sprintf("%d guesses", m.session.Guesses()))

	if m.session.Status() != game.StatusWon {
		return nil
	}
	m.input.Blur()
	round := m.session.ID()
	return tea.Tick(m.opts.RevealDelay, func(time.Time) tea.Msg { return revealMsg{round: round} })
}

// restart begins a new round and clears every piece of view state.
func (m *Model) restart() error {
	if err := m.session.Start(); err != nil {
		return err
	}
	m.rows = nil
	m.revealed = false
	m.input.SetValue("")
	m.input.Focus()
	m.refreshMatches()
	m.setStatus(fmt.Sprintf("A wild Pokémon is hiding among %d. Who is it?", m.session.Catalog().Len()))
	return nil
}

// toggleTheme persists the next theme and replays the grid under it.
func (m *Model) toggleTheme() {
	next := m.theme.Next()
	if err := prefs.SaveTheme(context.Background(), m.prefs, next); err != nil {
		log.Warn().Err(err).Msg("save theme")
	}
	m.theme = next
	m.palette = theme.PaletteFor(next)

	rows, err := m.session.Rows()
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.rows = render.Rows(rows, m.theme)
	m.setStatus("theme: " + string(next))
}

// refreshMatches recomputes the suggestion list for the current input.
func (m *Model) refreshMatches() {
	prefix := m.input.Value()
	all := m.session.Suggest(prefix, 0)
	if prefix == "" && m.opts.SampleEmpty {
		all = lo.Samples(all, m.opts.MaxSuggestions)
	}
	if len(all) > m.opts.MaxSuggestions {
		all = all[:m.opts.MaxSuggestions]
	}
	m.matches = all
	m.cursor = 0
}

func (m *Model) setStatus(s string) { m.status, m.isError = s, false }
func (m *Model) setError(s string)  { m.status, m.isError = s, true }

// Run starts the full-screen program and blocks until the player quits.
func Run(sess *game.Session, pf prefs.Store, opts Options) error {
	m, err := New(sess, pf, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
