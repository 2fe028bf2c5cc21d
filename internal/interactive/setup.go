package interactive

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"globprompt/internal/config"
	"globprompt/internal/discovery"
	"globprompt/internal/output"
)

// ErrCancelled is returned when the user leaves the setup with ctrl+c or ctrl+d
var ErrCancelled = errors.New("setup cancelled")

// Asker asks the user one question at a time
type Asker interface {
	Ask(label, def string, validate func(string) error) (string, error)
	Choose(label string, items []string, current string) (string, error)
}

// PromptAsker asks through promptui
type PromptAsker struct{}

// Ask reads a line of text
func (PromptAsker) Ask(label, def string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validate,
	}
	answer, err := p.Run()
	if err != nil {
		return "", handleUserCancellation(err)
	}
	return answer, nil
}

// Choose picks one of items, starting at current
func (PromptAsker) Choose(label string, items []string, current string) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	cursor := 0
	for i, item := range items {
		if item == current {
			cursor = i
		}
	}

	s := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      len(items),
		CursorPos: cursor,
	}
	_, answer, err := s.Run()
	if err != nil {
		return "", handleUserCancellation(err)
	}
	return answer, nil
}

// handleUserCancellation checks if error is user cancellation (Ctrl+C or Ctrl+D).
func handleUserCancellation(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}

const (
	yes = "yes"
	no  = "no"
)

// Setup walks the user through the settings of cfg, updating it in place
func Setup(a Asker, cfg *config.Config) error {
	var err error

	if cfg.Prompt.Message, err = a.Ask("Question text", cfg.Prompt.Message, nil); err != nil {
		return err
	}

	if cfg.Prompt.Default, err = a.Ask("Default pattern (empty for none)", cfg.Prompt.Default, validatePattern); err != nil {
		return err
	}

	size, err := a.Ask("Paths per page", strconv.Itoa(cfg.Prompt.PageSize), validatePositive)
	if err != nil {
		return err
	}
	cfg.Prompt.PageSize, _ = strconv.Atoi(size)

	if cfg.Prompt.ForceMatch, err = askBool(a, "Require at least one match", cfg.Prompt.ForceMatch); err != nil {
		return err
	}

	if cfg.Glob.Dot, err = askBool(a, "Include hidden files", cfg.Glob.Dot); err != nil {
		return err
	}

	if cfg.Output.Format, err = a.Choose("Output format", []string{output.FormatLines, output.FormatJSON, output.FormatYAML}, cfg.Output.Format); err != nil {
		return err
	}

	return cfg.Validate()
}

func askBool(a Asker, label string, current bool) (bool, error) {
	def := no
	if current {
		def = yes
	}
	answer, err := a.Choose(label, []string{yes, no}, def)
	if err != nil {
		return false, err
	}
	return answer == yes, nil
}

func validatePattern(s string) error {
	if s == "" {
		return nil
	}
	if _, err := discovery.Compile(s, false); err != nil {
		return err
	}
	return nil
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
