package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"
)

// Result formats
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// WriteResult writes the selected paths to w in the given format.
// An empty selection writes nothing in lines format and an empty list otherwise.
func WriteResult(w io.Writer, paths []string, format string) error {
	if paths == nil {
		paths = []string{}
	}

	switch format {
	case FormatLines, "":
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(paths); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil

	case FormatYAML:
		data, err := yaml.Marshal(paths)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatResult returns the paths rendered in format
func FormatResult(paths []string, format string) (string, error) {
	var b strings.Builder
	if err := WriteResult(&b, paths, format); err != nil {
		return "", err
	}
	return b.String(), nil
}

// CopyFunc writes text to the system clipboard
type CopyFunc func(text string) error

// Copy is the clipboard writer used by CopyResult; tests replace it
var Copy CopyFunc = clipboard.WriteAll

// CopyResult puts the newline-joined paths on the clipboard
func CopyResult(paths []string) error {
	if err := Copy(strings.Join(paths, "\n")); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
