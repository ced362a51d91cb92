// internal/theme/theme.go
//
// Presentation themes. A theme only changes how rows are drawn (sprite
// source and colors); it never touches game state, so switching theme is
// followed by a replay of the session history.

package theme

import (
	"fmt"
	"strings"
)

// ID is one of a fixed set of theme identifiers.
type ID string

const (
	Default ID = "default"
	Pokedex ID = "pokedex"
)

// All lists the known themes in toggle order.
var All = []ID{Default, Pokedex}

// Valid reports whether id is a known theme.
func (id ID) Valid() bool {
	for _, t := range All {
		if t == id {
			return true
		}
	}
	return false
}

// Parse returns the theme named s (case-insensitive) or an error.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return id, nil
}

// OrDefault parses s and falls back to Default when it is empty or unknown.
func OrDefault(s string) ID {
	id, err := Parse(s)
	if err != nil {
		return Default
	}
	return id
}

// Next returns the theme after id in toggle order.
func (id ID) Next() ID {
	for i, t := range All {
		if t == id {
			return All[(i+1)%len(All)]
		}
	}
	return Default
}

// ImageURL returns the sprite URL for an entity id under this theme.
func (id ID) ImageURL(entityID int) string {
	if id == Pokedex {
		return fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png", entityID)
	}
	return fmt.Sprintf("https://assets.pokemon.com/assets/cms2/img/pokedex/full/%03d.png", entityID)
}
