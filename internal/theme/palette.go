// internal/theme/palette.go
//
// lipgloss styles per theme for the terminal adapter: one style per verdict
// plus the chrome around the grid.

package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the terminal styles for one theme.
type Palette struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Correct   lipgloss.Style
	Partial   lipgloss.Style
	Incorrect lipgloss.Style
	Hint      lipgloss.Style
	Panel     lipgloss.Style
	Error     lipgloss.Style
}

var (
	red    = lipgloss.Color("#e3350d")
	cream  = lipgloss.Color("#f2f2f2")
	green  = lipgloss.Color("#4caf50")
	amber  = lipgloss.Color("#f0a030")
	slate  = lipgloss.Color("#5a5a6e")
	ink    = lipgloss.Color("#1e1e2e")
	lcd    = lipgloss.Color("#9bbc0f")
	lcdDim = lipgloss.Color("#306230")
	lcdInk = lipgloss.Color("#0f380f")
)

func basePalette(fg, accent lipgloss.Color) Palette {
	cell := lipgloss.NewStyle().Width(12).Padding(0, 1).Foreground(cream)
	return Palette{
		App:    lipgloss.NewStyle().Padding(1, 2),
		Title:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(slate),
		Header: cell.Foreground(fg).Bold(true),
		Cell:   cell,
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Error: lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}

// PaletteFor returns the styles for id; unknown ids get the default palette.
func PaletteFor(id ID) Palette {
	if id == Pokedex {
		p := basePalette(lcdInk, lcdInk)
		p.App = p.App.Background(lcd).Foreground(lcdInk)
		p.Correct = p.Cell.Background(lcdInk).Foreground(lcd)
		p.Partial = p.Cell.Background(lcdDim).Foreground(lcd)
		p.Incorrect = p.Cell.Foreground(lcdInk)
		p.Hint = p.Cell.Foreground(lcdInk).Bold(true)
		return p
	}
	p := basePalette(cream, red)
	p.Correct = p.Cell.Background(green)
	p.Partial = p.Cell.Background(amber).Foreground(ink)
	p.Incorrect = p.Cell.Background(red)
	p.Hint = p.Cell.Background(slate)
	return p
}
