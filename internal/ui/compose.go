package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ComposeLayers draws front over back with front shifted horizontally by
// offset cells. Columns the shifted front no longer covers show back. Both
// layers are treated as width cells wide; the result has as many rows as the
// taller layer.
func ComposeLayers(back, front string, width int, offset float64) string {
	if width <= 0 {
		return ""
	}
	shift := 0
	if !math.IsNaN(offset) {
		shift = int(math.Round(math.Max(-float64(width), math.Min(float64(width), offset))))
	}

	b := strings.Split(back, "\n")
	f := strings.Split(front, "\n")
	n := max(len(b), len(f))
	out := make([]string, n)
	for i := range n {
		bl := fit(row(b, i), width)
		fl := fit(row(f, i), width)
		switch {
		case shift == 0:
			out[i] = fl
		case shift >= width || shift <= -width:
			out[i] = bl
		case shift > 0:
			out[i] = ansi.Cut(bl, 0, shift) + reset + ansi.Cut(fl, 0, width-shift) + reset
		default:
			s := -shift
			out[i] = ansi.Cut(fl, s, width) + reset + ansi.Cut(bl, width-s, width) + reset
		}
	}
	return strings.Join(out, "\n")
}

func row(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// fit pads or truncates a line to exactly width cells.
func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
