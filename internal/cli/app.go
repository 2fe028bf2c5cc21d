package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"globprompt/internal/discovery"
	"globprompt/internal/eventbus"
	"globprompt/internal/interactive"
	"globprompt/internal/output"
	"globprompt/internal/prompt"
	"globprompt/internal/ui"
)

// PromptFunc runs an interactive prompt and returns the selected paths
type PromptFunc func(ctx context.Context, bus eventbus.EventBus, q prompt.Question, glob discovery.GlobFunc, styles *prompt.Styles) ([]string, error)

// App bundles the collaborators of the command line. Tests swap them out.
type App struct {
	Version    string
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool
	Prompt     PromptFunc
	Glob       discovery.GlobFunc
	Pager      func(content string) error
	Copy       func(paths []string) error
	Asker      interactive.Asker
	Logger     *output.Logger

	logFile *os.File
	runID   string
}

// NewApp wires the App to the real terminal
func NewApp(version string) *App {
	return &App{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
		Prompt: func(ctx context.Context, bus eventbus.EventBus, q prompt.Question, glob discovery.GlobFunc, styles *prompt.Styles) ([]string, error) {
			// stdout carries the result, so draw on stderr
			return ui.Run(ctx, bus, q, glob, styles, tea.WithOutput(os.Stderr))
		},
		Glob:   discovery.Glob,
		Pager:  output.ShowInPager,
		Copy:   output.CopyResult,
		Asker:  interactive.PromptAsker{},
		Logger: output.NewLogger(),
	}
}
