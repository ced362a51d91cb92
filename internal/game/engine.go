// internal/game/engine.go
//
// Comparison engine: maps (guessed, secret) to a FeedbackRow.
//
// Rules:
//   - generation: exact match → correct, otherwise incorrect.
//   - type1/type2: slot-exact match → correct; a type the secret has in the
//     other slot → partial; otherwise incorrect. Two absent type2 slots match.
//   - height/weight/evolutionStage: equal → correct; guessed below the secret
//     → higher; guessed above → lower. Only the direction is reported.
//
// The engine is pure: it never mutates its inputs and the same pair always
// yields the same row, which is what lets History replay the grid.

package game

import (
	"cmp"

	"github.com/samber/lo"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
)

// Compare evaluates a guessed entity against the secret.
func Compare(guessed, secret catalog.EntityRecord) FeedbackRow {
	t1, t2 := compareTypes(guessed, secret)
	return FeedbackRow{
		Guess:          guessed,
		Generation:     compareExact(guessed.Generation, secret.Generation),
		Type1:          t1,
		Type2:          t2,
		Height:         compareOrdered(guessed.Height, secret.Height),
		Weight:         compareOrdered(guessed.Weight, secret.Weight),
		EvolutionStage: compareOrdered(guessed.EvolutionStage, secret.EvolutionStage),
	}
}

// compareExact is the categorical rule: no partial state.
func compareExact[T comparable](guessed, secret T) Verdict {
	if guessed == secret {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// compareTypes scores both type slots against the secret's type set.
func compareTypes(guessed, secret catalog.EntityRecord) (Verdict, Verdict) {
	secretTypes := lo.Compact([]string{secret.Type1, secret.Type2})

	t1 := VerdictIncorrect
	switch {
	case guessed.Type1 == secret.Type1:
		t1 = VerdictCorrect
	case lo.Contains(secretTypes, guessed.Type1):
		t1 = VerdictPartial
	}

	t2 := VerdictIncorrect
	switch {
	case guessed.Type2 == secret.Type2:
		t2 = VerdictCorrect
	case guessed.HasType2() && lo.Contains(secretTypes, guessed.Type2):
		t2 = VerdictPartial
	}
	return t1, t2
}

// compareOrdered reports the corrective direction for numeric attributes.
func compareOrdered[T cmp.Ordered](guessed, secret T) Verdict {
	switch cmp.Compare(guessed, secret) {
	case 0:
		return VerdictCorrect
	case -1:
		return VerdictHigher
	default:
		return VerdictLower
	}
}
