package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/swipequiz/internal/config"
	"github.com/idilsaglam/swipequiz/internal/nav"
	"github.com/idilsaglam/swipequiz/internal/tui"
	"github.com/idilsaglam/swipequiz/internal/ui"
)

func newPlayCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the card stack (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := tui.New(tuiOptions(e))
			if err != nil {
				return err
			}
			e.log.Info("starting", zap.Int("questions", len(e.questions)), zap.String("theme", e.cfg.Theme))
			final, err := tui.Run(m)
			if err != nil {
				return err
			}
			st := final.Controller().State()
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("Stopped at question %d/%d", st.Index+1, st.Count))
			return nil
		},
	}
}

func tuiOptions(e *env) tui.Options {
	return tui.Options{
		Questions:        e.questions,
		Params:           navParams(e.cfg),
		ActivationOffset: e.cfg.Gesture.ActivationOffset,
		FPS:              e.cfg.Animation.FPS,
		Theme:            ui.Current(),
		Logger:           e.log,
	}
}

// navParams starts with a zero viewport; the first resize sets it.
func navParams(cfg *config.Config) nav.Params {
	return nav.Params{
		DistanceFraction:  cfg.Navigation.DistanceFraction,
		VelocityThreshold: cfg.Navigation.VelocityThreshold,
		Commit:            cfg.Animation.CommitSpring(),
		Return:            cfg.Animation.ReturnSpring(),
	}
}
