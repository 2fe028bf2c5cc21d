package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"globprompt/internal/domain"
)

// keyFromMsg converts a bubbletea key into the line editor's key descriptor
func keyFromMsg(msg tea.KeyMsg) domain.Key {
	key := domain.Key{Meta: msg.Alt}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		key.Sequence = string(msg.Runes)
		key.Name = strings.ToLower(key.Sequence)
		key.Shift = key.Sequence != key.Name
		if msg.Type == tea.KeySpace {
			key.Sequence = " "
			key.Name = "space"
		}
		return key
	}

	name := strings.TrimPrefix(msg.String(), "alt+")
	switch {
	case strings.HasPrefix(name, "ctrl+"):
		key.Ctrl = true
		name = strings.TrimPrefix(name, "ctrl+")
	case strings.HasPrefix(name, "shift+"):
		key.Shift = true
		name = strings.TrimPrefix(name, "shift+")
	}
	key.Name = name
	return key
}

// isAbort reports whether the key cancels the prompt
func isAbort(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true
	}
	return false
}

func isSubmit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}
