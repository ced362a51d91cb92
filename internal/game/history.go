// internal/game/history.go
//
// Feedback history for a session.
//
// Only the guessed names are kept (oldest first) plus a set for duplicate
// checks. Rows are never stored: Replay recomputes them from the catalog and
// the secret, so a redraw always matches the current comparison rules.

package game

import (
	"fmt"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
)

// History is the insertion-ordered, duplicate-free list of guessed names.
// The zero value is ready to use.
type History struct {
	order []string
	seen  map[string]struct{}
}

// Add appends a canonical name; it returns false if the name is already present.
func (h *History) Add(name string) bool {
	if h.seen == nil {
		h.seen = make(map[string]struct{})
	}
	if _, ok := h.seen[name]; ok {
		return false
	}
	h.seen[name] = struct{}{}
	h.order = append(h.order, name)
	return true
}

// Has reports whether name was already guessed.
func (h *History) Has(name string) bool {
	_, ok := h.seen[name]
	return ok
}

// Len returns the number of guesses recorded.
func (h *History) Len() int { return len(h.order) }

// Names returns the guessed names, oldest first.
func (h *History) Names() []string {
	return append([]string(nil), h.order...)
}

// Reset forgets every guess.
func (h *History) Reset() {
	h.order = nil
	h.seen = nil
}

// Replay recomputes every row against secret and returns them newest first.
func (h *History) Replay(cat *catalog.Catalog, secret catalog.EntityRecord) ([]FeedbackRow, error) {
	return Replay(cat, secret, h.order)
}

// Replay rebuilds feedback rows for names (given oldest first) and returns
// them newest first. A name missing from the catalog is an error.
func Replay(cat *catalog.Catalog, secret catalog.EntityRecord, names []string) ([]FeedbackRow, error) {
	rows := make([]FeedbackRow, len(names))
	for i, name := range names {
		guessed, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("replay %q: %w", name, ErrNotFound)
		}
		rows[len(names)-1-i] = Compare(guessed, secret)
	}
	return rows, nil
}
