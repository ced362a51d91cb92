// internal/game/session.go
//
// Session state machine for a single game.
// Responsibilities:
//   - Own the secret entity, the guess history and the status.
//   - Validate guesses (known name, not yet guessed, game still active).
//   - Score accepted guesses via Compare and detect the win.
//
// State transitions:
//   uninitialized --Start--> active --winning guess--> won
//   any state     --Start--> active (fresh secret, empty history)
//
// A Session is not safe for concurrent use; callers serialize access.

package game

import (
	"time"

	"github.com/rs/xid"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
)

// Session holds the state of one game.
type Session struct {
	id         string
	cat        *catalog.Catalog
	picker     Picker
	secret     catalog.EntityRecord
	history    History
	status     Status
	startedAt  time.Time
	finishedAt time.Time
}

// NewSession creates an uninitialized session over cat.
// A nil picker means RandomPicker.
func NewSession(cat *catalog.Catalog, picker Picker) (*Session, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if picker == nil {
		picker = RandomPicker()
	}
	return &Session{cat: cat, picker: picker, status: StatusUninitialized}, nil
}

// Start picks a new secret and discards all previous state.
// On a picker error the session is left untouched.
func (s *Session) Start() error {
	secret, err := s.picker.Pick(s.cat)
	if err != nil {
		return err
	}
	s.id = xid.New().String()
	s.secret = secret
	s.history.Reset()
	s.status = StatusActive
	s.startedAt = time.Now()
	s.finishedAt = time.Time{}
	return nil
}

// SubmitGuess validates, records and scores a guess.
// Returns ErrGameAlreadyOver, ErrNotFound or ErrAlreadyGuessed without
// touching state; otherwise the computed row.
func (s *Session) SubmitGuess(name string) (FeedbackRow, error) {
	if s.status != StatusActive {
		return FeedbackRow{}, ErrGameAlreadyOver
	}
	guessed, ok := s.cat.Lookup(name)
	if !ok {
		return FeedbackRow{}, ErrNotFound
	}
	if !s.history.Add(guessed.Name) {
		return FeedbackRow{}, ErrAlreadyGuessed
	}

	row := Compare(guessed, s.secret)
	if guessed.Name == s.secret.Name {
		s.status = StatusWon
		s.finishedAt = time.Now()
	}
	return row, nil
}

// ID identifies the current round; it changes on every Start.
func (s *Session) ID() string { return s.id }

// Status reports the current state.
func (s *Session) Status() Status { return s.status }

// Catalog returns the catalog the session plays over.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Guesses returns how many guesses were accepted this round.
func (s *Session) Guesses() int { return s.history.Len() }

// Guessed returns accepted names, oldest first.
func (s *Session) Guessed() []string { return s.history.Names() }

// HasGuessed reports whether name (any case) was already accepted.
func (s *Session) HasGuessed(name string) bool {
	return s.history.Has(catalog.Normalize(name))
}

// Reveal returns the secret once the game is won.
func (s *Session) Reveal() (catalog.EntityRecord, bool) {
	if s.status != StatusWon {
		return catalog.EntityRecord{}, false
	}
	return s.secret, true
}

// Elapsed is the time from Start to the win, or to now while active.
func (s *Session) Elapsed() time.Duration {
	switch s.status {
	case StatusWon:
		return s.finishedAt.Sub(s.startedAt)
	case StatusActive:
		return time.Since(s.startedAt)
	}
	return 0
}

// Rows recomputes the feedback grid, newest first.
func (s *Session) Rows() ([]FeedbackRow, error) {
	if s.status == StatusUninitialized {
		return nil, nil
	}
	return s.history.Replay(s.cat, s.secret)
}

// Suggest lists catalog entities starting with prefix that have not been
// guessed yet. limit <= 0 means no limit.
func (s *Session) Suggest(prefix string, limit int) []catalog.EntityRecord {
	return s.cat.Suggest(prefix, s.history.Has, limit)
}
