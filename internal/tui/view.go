package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
	"github.com/robalobadob/pokedle/apps/go-server/internal/render"
)

// View renders header, input with suggestions, the feedback grid, and the
// end panel once revealed.
func (m Model) View() string {
	p := m.palette
	var sb strings.Builder

	sb.WriteString(p.Title.Render("POKEDLE") + "  " + p.Muted.Render("theme: "+string(m.theme)) + "\n\n")

	if m.revealed {
		sb.WriteString(m.endPanel() + "\n\n")
	} else if m.session.Status() == game.StatusActive {
		sb.WriteString("> " + m.input.View() + "\n")
		for i, e := range m.matches {
			line := "  " + e.Name
			if i == m.cursor {
				line = p.Title.Render("› " + e.Name)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	if m.status != "" {
		if m.isError {
			sb.WriteString(p.Error.Render(m.status) + "\n\n")
		} else {
			sb.WriteString(p.Muted.Render(m.status) + "\n\n")
		}
	}

	sb.WriteString(m.grid())
	sb.WriteString("\n" + p.Muted.Render("enter guess · tab complete · ↑/↓ select · ctrl+t theme · ctrl+r new game · esc quit"))
	return p.App.Render(sb.String())
}

// grid draws the header row and every feedback row, newest first.
func (m Model) grid() string {
	p := m.palette
	header := make([]string, 0, len(render.Columns))
	for _, c := range render.Columns {
		header = append(header, p.Header.Render(c))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for _, r := range m.rows {
		cells := []string{p.Cell.Render(r.Name)}
		for _, c := range r.Cells {
			cells = append(cells, m.cellStyle(c.Verdict).Render(strings.TrimSpace(c.Text+" "+c.Arrow)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n") + "\n"
}

// cellStyle picks the visual treatment for a verdict.
func (m Model) cellStyle(v game.Verdict) lipgloss.Style {
	switch v {
	case game.VerdictCorrect:
		return m.palette.Correct
	case game.VerdictPartial:
		return m.palette.Partial
	case game.VerdictHigher, game.VerdictLower:
		return m.palette.Hint
	}
	return m.palette.Incorrect
}

func (m Model) endPanel() string {
	secret, ok := m.session.Reveal()
	if !ok {
		return ""
	}
	msg := fmt.Sprintf("Gotcha! You caught %s!\n%d guesses · %s\n\n%s\npress enter to play again",
		secret.Name, m.session.Guesses(), m.session.Elapsed().Round(time.Second), m.theme.ImageURL(secret.ID))
	return m.palette.Panel.Render(msg)
}
