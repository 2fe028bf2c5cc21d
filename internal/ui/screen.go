package ui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

// screen holds the last drawing the controller produced
type screen struct {
	content string
	bottom  string
	done    bool
}

func (s *screen) Render(content, bottom string) {
	s.content = content
	s.bottom = bottom
}

func (s *screen) Done() {
	s.done = true
}

// view lays out the drawing, cutting lines wider than width.
// A width of zero means the terminal size is not known yet.
func (s *screen) view(width int) string {
	out := s.content
	if s.bottom != "" {
		out += "\n" + s.bottom
	}
	if width <= 0 {
		return out
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(width), "…")
	}
	return strings.Join(lines, "\n")
}
