package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/swipequiz/internal/model"
	"github.com/idilsaglam/swipequiz/internal/ui"
)

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every question in the deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := ui.Current()
			lines := []string{
				fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Questions"), ui.C(t.Accent, "Total"), len(e.questions)),
				"",
			}
			lines = append(lines, questionLines(e.questions)...)
			lines = append(lines, "", ui.C(t.Muted, "Tip: `swipequiz show 3` prints a single card"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Print one card (1-based index)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: swipequiz show <index>")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("show: not a number: %s", args[0])
			}
			if n < 1 || n > len(e.questions) {
				return usagef("index out of range: have %d, got %d", len(e.questions), n)
			}
			q := e.questions[n-1]
			t := ui.Current()

			var lines []string
			if q.Category != "" {
				lines = append(lines, ui.C(t.Muted, strings.ToUpper(q.Category)), "")
			}
			lines = append(lines,
				ui.C(t.Title, q.Text),
				"",
				ui.C(t.Muted, ui.Hint),
				ui.C(t.Accent, ui.ProgressBar(n, len(e.questions), 20)),
			)
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func questionLines(qs []model.Question) []string {
	t := ui.Current()
	out := make([]string, 0, len(qs))
	for i, q := range qs {
		idx := fmt.Sprintf("%2d.", i+1)
		text := ansi.Truncate(q.Text, 80, "...")
		cat := ""
		if q.Category != "" {
			cat = ui.C(t.Accent, "["+q.Category+"]") + " "
		}
		out = append(out, fmt.Sprintf("%s %s%s", ui.C(t.Muted, idx), cat, text))
	}
	return out
}
