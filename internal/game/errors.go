// internal/game/errors.go
//
// Sentinel errors for session operations. Callers match them with errors.Is;
// FixedPicker wraps ErrNotFound with the offending name.

package game

import "errors"

// Errors returned by Session. All are recoverable; the session is left
// unchanged whenever one is returned.
var (
	// ErrNotFound: the submitted name does not match any catalog entry.
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyGuessed: the name is already part of this session's guesses.
	ErrAlreadyGuessed = errors.New("already guessed")
	// ErrGameAlreadyOver: the session is not active (won or never started).
	ErrGameAlreadyOver = errors.New("game already over")
	// ErrEmptyCatalog: a session cannot exist without entities.
	ErrEmptyCatalog = errors.New("catalog is empty")
)
