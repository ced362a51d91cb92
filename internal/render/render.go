// internal/render/render.go
//
// Presentation-agnostic grid model shared by the web and terminal adapters.
// A Row is a FeedbackRow turned into display cells: formatted values
// (units, "---" for an absent type, direction arrows) plus the verdict that
// selects the visual treatment.

package render

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

// Columns are the grid headers in display order.
var Columns = []string{"Pokémon", "Gen", "Type 1", "Type 2", "Height", "Weight", "Stage"}

// Cell is one attribute cell.
type Cell struct {
	Text    string       `json:"text"`
	Verdict game.Verdict `json:"verdict"`
	Arrow   string       `json:"arrow,omitempty"`
}

// Row is one drawable grid row.
type Row struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	ImageURL string `json:"imageUrl"`
	Cells    []Cell `json:"cells"`
}

// NewRow formats a feedback row for display under theme t.
func NewRow(row game.FeedbackRow, t theme.ID) Row {
	g := row.Guess
	return Row{
		Name:     g.Name,
		ID:       g.ID,
		ImageURL: t.ImageURL(g.ID),
		Cells: []Cell{
			{Text: strconv.Itoa(g.Generation), Verdict: row.Generation},
			{Text: typeText(g.Type1), Verdict: row.Type1},
			{Text: typeText(g.Type2), Verdict: row.Type2},
			numeric(formatFloat(g.Height)+"m", row.Height),
			numeric(formatFloat(g.Weight)+"kg", row.Weight),
			numeric(strconv.Itoa(g.EvolutionStage), row.EvolutionStage),
		},
	}
}

// Rows formats a list of feedback rows, preserving order.
func Rows(rows []game.FeedbackRow, t theme.ID) []Row {
	return lo.Map(rows, func(r game.FeedbackRow, _ int) Row { return NewRow(r, t) })
}

// Arrow returns the hint arrow for a numeric verdict, or "".
func Arrow(v game.Verdict) string {
	switch v {
	case game.VerdictHigher:
		return "⬆"
	case game.VerdictLower:
		return "⬇"
	}
	return ""
}

func numeric(text string, v game.Verdict) Cell {
	return Cell{Text: text, Verdict: v, Arrow: Arrow(v)}
}

func typeText(t string) string {
	if t == "" {
		return "---"
	}
	return t
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
