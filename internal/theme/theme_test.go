package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

func TestParse(t *testing.T) {
	id, err := theme.Parse(" PokeDex ")
	require.NoError(t, err)
	assert.Equal(t, theme.Pokedex, id)

	_, err = theme.Parse("neon")
	assert.Error(t, err)

	assert.Equal(t, theme.Default, theme.OrDefault(""))
	assert.Equal(t, theme.Default, theme.OrDefault("neon"))
	assert.Equal(t, theme.Pokedex, theme.OrDefault("pokedex"))
}

func TestNextToggles(t *testing.T) {
	assert.Equal(t, theme.Pokedex, theme.Default.Next())
	assert.Equal(t, theme.Default, theme.Pokedex.Next())
	assert.Equal(t, theme.Default, theme.ID("bogus").Next())
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://assets.pokemon.com/assets/cms2/img/pokedex/full/007.png", theme.Default.ImageURL(7))
	assert.Equal(t, "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/7.png", theme.Pokedex.ImageURL(7))
	assert.Equal(t, "https://assets.pokemon.com/assets/cms2/img/pokedex/full/151.png", theme.Default.ImageURL(151))
}

func TestPalettesDifferPerVerdictStyle(t *testing.T) {
	for _, id := range theme.All {
		p := theme.PaletteFor(id)
		c := p.Correct.GetBackground()
		assert.NotEqual(t, c, p.Incorrect.GetBackground(), id)
		assert.NotEqual(t, c, p.Partial.GetBackground(), id)
	}
}
