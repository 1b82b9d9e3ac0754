package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/swipequiz/internal/config"
	"github.com/idilsaglam/swipequiz/internal/deck"
	"github.com/idilsaglam/swipequiz/internal/logger"
	"github.com/idilsaglam/swipequiz/internal/model"
	"github.com/idilsaglam/swipequiz/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad arguments so Execute can exit with exitUsage.
type usageError struct{ error }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// env is what every subcommand needs once flags are parsed.
type env struct {
	cfg       *config.Config
	questions []model.Question
	log       *zap.Logger
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd, e := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	// cobra skips post-run hooks when a command fails.
	if e.log != nil {
		if err != nil {
			e.log.Error("command failed", zap.Error(err))
		}
		_ = e.log.Sync()
	}
	if err != nil {
		ui.Fail(stderr, err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func newRootCmd() (*cobra.Command, *env) {
	var (
		configPath string
		e          env
	)

	cmd := &cobra.Command{
		Use:           "swipequiz",
		Short:         "Swipe through trivia cards in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if err := ui.SetTheme(cfg.Theme); err != nil {
				return err
			}
			// mono is for terminals that should not see escape codes at all.
			ui.SetColorForcing(cfg.Color == "always", cfg.Color == "never" || cfg.Theme == "mono")
			qs, err := deck.Load(cfg.Deck)
			if err != nil {
				return fmt.Errorf("load deck: %w", err)
			}
			log, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			e = env{cfg: cfg, questions: qs, log: log}
			return nil
		},
	}
	cmd.Args = func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			return usagef("unknown command %q", args[0])
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", os.Getenv("SWIPEQUIZ_CONFIG"), "path to YAML config")
	pf.String("deck", "", "deck file (.json, .yaml); defaults to the built-in sample deck")
	pf.String("theme", "", "color theme: classic, neon, mono")
	pf.String("color", "", "colored output: auto, always, never")
	pf.String("log-file", "", "write logs to this file")

	play := newPlayCmd(&e)
	cmd.RunE = play.RunE
	cmd.AddCommand(play, newListCmd(&e), newShowCmd(&e))
	return cmd, &e
}
