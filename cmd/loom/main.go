package main

import (
	"os"

	"github.com/loomlang/loom/cli/commands"
	"github.com/loomlang/loom/cli/internal/ui"
	"github.com/loomlang/loom/internal/debug"
)

func main() {
	debug.Init(os.Getenv("LOOM_DEBUG") != "")

	if err := commands.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(commands.ExitCode(err))
	}
}
