package ui

import "globprompt/internal/prompt"

// queryResultMsg carries a finished glob query back to the Update loop
type queryResultMsg struct {
	result prompt.Result
}
