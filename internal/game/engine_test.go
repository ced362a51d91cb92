package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
)

var (
	bulbasaur  = catalog.EntityRecord{Name: "BULBASAUR", ID: 1, Generation: 1, Type1: "Grass", Type2: "Poison", Height: 0.7, Weight: 6.9, EvolutionStage: 1}
	charmander = catalog.EntityRecord{Name: "CHARMANDER", ID: 4, Generation: 1, Type1: "Fire", Height: 0.6, Weight: 8.5, EvolutionStage: 1}
	charizard  = catalog.EntityRecord{Name: "CHARIZARD", ID: 6, Generation: 1, Type1: "Fire", Type2: "Flying", Height: 1.7, Weight: 90.5, EvolutionStage: 3}
	squirtle   = catalog.EntityRecord{Name: "SQUIRTLE", ID: 7, Generation: 1, Type1: "Water", Height: 0.5, Weight: 9.0, EvolutionStage: 1}
	chikorita  = catalog.EntityRecord{Name: "CHIKORITA", ID: 152, Generation: 2, Type1: "Grass", Height: 0.9, Weight: 6.4, EvolutionStage: 1}
	// Same types as charizard, slots swapped.
	skyflame = catalog.EntityRecord{Name: "SKYFLAME", ID: 900, Generation: 3, Type1: "Flying", Type2: "Fire", Height: 1.7, Weight: 90.5, EvolutionStage: 3}
)

func TestCompareBulbasaurCharmanderExample(t *testing.T) {
	row := game.Compare(charmander, bulbasaur)

	assert.Equal(t, charmander, row.Guess)
	assert.Equal(t, game.VerdictCorrect, row.Generation)
	assert.Equal(t, game.VerdictIncorrect, row.Type1)
	assert.Equal(t, game.VerdictIncorrect, row.Type2)
	assert.Equal(t, game.VerdictHigher, row.Height)
	assert.Equal(t, game.VerdictLower, row.Weight)
	assert.Equal(t, game.VerdictCorrect, row.EvolutionStage)
	assert.False(t, row.AllCorrect())
}

func TestCompareTypes(t *testing.T) {
	testCases := []struct {
		name    string
		guessed catalog.EntityRecord
		secret  catalog.EntityRecord
		type1   game.Verdict
		type2   game.Verdict
	}{
		{name: "swapped slots are partial", guessed: skyflame, secret: charizard, type1: game.VerdictPartial, type2: game.VerdictPartial},
		{name: "both type2 absent match", guessed: charmander, secret: squirtle, type1: game.VerdictIncorrect, type2: game.VerdictCorrect},
		{name: "guessed type2 absent vs present", guessed: charmander, secret: charizard, type1: game.VerdictCorrect, type2: game.VerdictIncorrect},
		{name: "guessed type2 present vs absent", guessed: charizard, secret: charmander, type1: game.VerdictCorrect, type2: game.VerdictIncorrect},
		{name: "type1 found in secret type2", guessed: catalog.EntityRecord{Type1: "Poison"}, secret: bulbasaur, type1: game.VerdictPartial, type2: game.VerdictIncorrect},
		{name: "type2 found in secret type1", guessed: catalog.EntityRecord{Type1: "Bug", Type2: "Grass"}, secret: bulbasaur, type1: game.VerdictIncorrect, type2: game.VerdictPartial},
		{name: "shared type1 and unrelated type2", guessed: catalog.EntityRecord{Type1: "Grass", Type2: "Ice"}, secret: chikorita, type1: game.VerdictCorrect, type2: game.VerdictIncorrect},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := game.Compare(tc.guessed, tc.secret)
			assert.Equal(t, tc.type1, row.Type1)
			assert.Equal(t, tc.type2, row.Type2)
		})
	}
}

func TestCompareGenerationHasNoPartial(t *testing.T) {
	row := game.Compare(chikorita, bulbasaur)
	assert.Equal(t, game.VerdictIncorrect, row.Generation)
	// Type1 matches even across generations.
	assert.Equal(t, game.VerdictCorrect, row.Type1)
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	g, s := charizard, bulbasaur
	_ = game.Compare(g, s)
	assert.Equal(t, charizard, g)
	assert.Equal(t, bulbasaur, s)
}

func TestCompareProperties(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	recs := cat.Records()

	for _, e := range recs {
		assert.True(t, game.Compare(e, e).AllCorrect(), "self comparison of %s", e.Name)
	}

	checkOrdered := func(t *testing.T, v game.Verdict, guessed, secret float64) {
		t.Helper()
		switch v {
		case game.VerdictCorrect:
			assert.Equal(t, secret, guessed)
		case game.VerdictHigher:
			assert.Less(t, guessed, secret)
		case game.VerdictLower:
			assert.Greater(t, guessed, secret)
		default:
			t.Fatalf("unexpected numeric verdict %q", v)
		}
	}

	for _, g := range recs {
		for _, s := range recs {
			first := game.Compare(g, s)
			assert.Equal(t, first, game.Compare(g, s))

			checkOrdered(t, first.Height, g.Height, s.Height)
			checkOrdered(t, first.Weight, g.Weight, s.Weight)
			checkOrdered(t, first.EvolutionStage, float64(g.EvolutionStage), float64(s.EvolutionStage))

			if g.HasType2() && s.HasType2() && g.Type1 == s.Type2 && g.Type2 == s.Type1 && g.Type1 != g.Type2 {
				assert.Equal(t, game.VerdictPartial, first.Type1)
				assert.Equal(t, game.VerdictPartial, first.Type2)
			}
		}
	}
}
