package main

import (
	"context"
	"errors"
	"os"

	"globprompt/internal/cli"
	"globprompt/internal/interactive"
	"globprompt/internal/ui"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	app := cli.NewApp(version)
	if err := app.Execute(os.Args[1:]); err != nil {
		// Cancelled by the user: nothing to report
		if errors.Is(err, ui.ErrAborted) || errors.Is(err, interactive.ErrCancelled) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		app.Logger.Error("%v", err)
		os.Exit(1)
	}
}
