// internal/game/types.go
//
// Core type definitions for the guessing engine.
// Defines:
//   - Verdict: per-attribute result of comparing a guess to the secret.
//   - Status: session lifecycle state (uninitialized → active → won).
//   - FeedbackRow: the full set of verdicts for one guess.

package game

import "github.com/robalobadob/pokedle/apps/go-server/internal/catalog"

// Verdict is the evaluation result for a single attribute of a guess.
//   - "correct":   values match exactly.
//   - "partial":   type present on the secret but in the other slot.
//   - "incorrect": no match.
//   - "higher":    guessed value is below the secret; guess higher next time.
//   - "lower":     guessed value is above the secret; guess lower next time.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictPartial   Verdict = "partial"
	VerdictIncorrect Verdict = "incorrect"
	VerdictHigher    Verdict = "higher"
	VerdictLower     Verdict = "lower"
)

// Status is the coarse session state.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusActive        Status = "active"
	StatusWon           Status = "won"
)

// FeedbackRow holds the verdicts for one guess together with the guessed
// record, which adapters need to draw the cell values.
type FeedbackRow struct {
	Guess          catalog.EntityRecord `json:"guess"`
	Generation     Verdict              `json:"generation"`
	Type1          Verdict              `json:"type1"`
	Type2          Verdict              `json:"type2"`
	Height         Verdict              `json:"height"`
	Weight         Verdict              `json:"weight"`
	EvolutionStage Verdict              `json:"evolutionStage"`
}

// Verdicts lists the row's verdicts in display order.
func (r FeedbackRow) Verdicts() []Verdict {
	return []Verdict{r.Generation, r.Type1, r.Type2, r.Height, r.Weight, r.EvolutionStage}
}

// AllCorrect reports whether every attribute matched.
func (r FeedbackRow) AllCorrect() bool {
	for _, v := range r.Verdicts() {
		if v != VerdictCorrect {
			return false
		}
	}
	return true
}
