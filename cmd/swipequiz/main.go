package main

import (
	"os"

	"github.com/idilsaglam/swipequiz/internal/cli"
)

func main() {
	// Subcommands, flags and exit codes live in the CLI package.
	os.Exit(cli.Execute())
}
