package ui

import (
	"fmt"
	"strings"
)

// Theme bundles the ANSI palette and box borders used for plain CLI output,
// plus the hex palette the card presenter blends for opacity.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string

	Card CardPalette
}

// CardPalette is expressed in hex so colors can be blended.
type CardPalette struct {
	Backdrop string // behind both cards
	Paper    string // card surface
	Ink      string // question text
	Label    string // category
	Hint     string // swipe hint
	Border   string
}

var Themes = []string{"classic", "neon", "mono"}

var current = themeFor("classic")

// SetTheme switches the package theme. Unknown names are an error and leave
// the current theme in place.
func SetTheme(name string) error {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, known := range Themes {
		if n == known {
			current = themeFor(n)
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes, ", "))
}

func themeFor(name string) Theme {
	switch name {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed,
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			Card: CardPalette{
				Backdrop: "#0d0221", Paper: "#1a0b3d", Ink: "#f6f7ff",
				Label: "#ff71ce", Hint: "#8e7cc3", Border: "#01cdfe",
			},
		}
	case "mono":
		return Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			Card: CardPalette{
				Backdrop: "#000000", Paper: "#000000", Ink: "#ffffff",
				Label: "#c0c0c0", Hint: "#808080", Border: "#ffffff",
			},
		}
	default:
		return Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			Card: CardPalette{
				Backdrop: "#f5f5f5", Paper: "#ffffff", Ink: "#000000",
				Label: "#666666", Hint: "#999999", Border: "#d0d0d0",
			},
		}
	}
}

// Current returns the active theme.
func Current() Theme { return current }
