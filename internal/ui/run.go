package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"globprompt/internal/discovery"
	"globprompt/internal/eventbus"
	"globprompt/internal/prompt"
)

// ErrAborted is returned when the user cancels the prompt with ctrl+c or esc
var ErrAborted = errors.New("prompt aborted")

// Run shows the prompt until it is answered and returns the selected paths.
// A nil bus or glob falls back to a private bus and discovery.Glob.
func Run(ctx context.Context, bus eventbus.EventBus, q prompt.Question, glob discovery.GlobFunc, styles *prompt.Styles, opts ...tea.ProgramOption) ([]string, error) {
	if bus == nil {
		bus = eventbus.New()
	}
	if glob == nil {
		glob = discovery.Glob
	}

	m := NewModel(ctx, bus, q, glob, styles)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}

	if m.Aborted() {
		return nil, ErrAborted
	}
	paths, ok := m.Answer()
	if !ok {
		return nil, ErrAborted
	}
	return paths, nil
}
