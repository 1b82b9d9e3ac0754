package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/idilsaglam/swipequiz/internal/model"
)

const Hint = "Swipe for next question"

// CardStyle carries the externally computed visual transforms.
type CardStyle struct {
	Opacity float64 // 0..1, blends foreground colors into the paper
	Scale   float64 // 0..1, shrinks the card box inside the viewport
}

// Solid is a card drawn at rest.
var Solid = CardStyle{Opacity: 1, Scale: 1}

// Blend mixes two hex colors; t=0 is from, t=1 is to. Unparseable input
// returns to unchanged.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return a.BlendRgb(b, math.Max(0, math.Min(1, t))).Clamped().Hex()
}

// RenderCard lays one question out over a width x height block. It is a pure
// function of its inputs; the result is exactly height lines of width cells.
func RenderCard(q model.Question, st CardStyle, width, height int, t Theme) string {
	if width < 1 || height < 1 {
		return ""
	}
	pal := t.Card
	backdrop := lipgloss.Color(pal.Backdrop)
	paper := lipgloss.Color(pal.Paper)
	fade := func(hex string) lipgloss.Color {
		return lipgloss.Color(Blend(pal.Paper, hex, st.Opacity))
	}

	if width < 8 || height < 5 {
		txt := lipgloss.NewStyle().Foreground(fade(pal.Ink)).Render(ansi.Truncate(q.Text, width, "…"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, txt,
			lipgloss.WithWhitespaceBackground(backdrop))
	}

	scale := st.Scale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	ow := min(width, int(math.Round(float64(width)*scale)))
	oh := min(height, int(math.Round(float64(height)*scale)))
	iw, ih := max(1, ow-2), max(1, oh-2)

	bodyH, withHint := ih, false
	if ih >= 3 {
		bodyH, withHint = ih-2, true
	}

	var parts []string
	if q.Category != "" {
		label := lipgloss.NewStyle().
			Foreground(fade(pal.Label)).
			Background(paper).
			Render(ansi.Truncate(strings.ToUpper(q.Category), iw, "…"))
		parts = append(parts, label, "")
	}
	text := lipgloss.NewStyle().
		Bold(true).
		Foreground(fade(pal.Ink)).
		Background(paper).
		Width(iw).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(q.Text)
	parts = append(parts, text)

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if lines := strings.Split(body, "\n"); len(lines) > bodyH {
		body = strings.Join(lines[:bodyH], "\n")
	}
	rows := []string{lipgloss.Place(iw, bodyH, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(paper))}

	if withHint {
		hint := lipgloss.NewStyle().
			Italic(true).
			Foreground(fade(pal.Hint)).
			Background(paper).
			Width(iw).
			Align(lipgloss.Center).
			Render(ansi.Truncate(Hint, iw, "…"))
		rows = append(rows, hint, lipgloss.NewStyle().Background(paper).Width(iw).Render(""))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Blend(pal.Backdrop, pal.Border, st.Opacity))).
		BorderBackground(backdrop).
		Background(paper).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(backdrop))
}
