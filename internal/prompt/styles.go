package prompt

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style for each semantic role in the prompt
type Styles struct {
	Prefix  lipgloss.Style
	Message lipgloss.Style
	Default lipgloss.Style
	Answer  lipgloss.Style
	Match   lipgloss.Style
	Empty   lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prefix:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Message: lipgloss.NewStyle().Bold(true),
		Default: lipgloss.NewStyle().Faint(true),
		Answer:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Match:   lipgloss.NewStyle().Faint(true),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// PlainStyles renders every role as unstyled text
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Prefix:  plain,
		Message: plain,
		Default: plain,
		Answer:  plain,
		Match:   plain,
		Empty:   plain,
		Error:   plain,
	}
}
