package prompt

import (
	"fmt"
	"strings"
)

// View is the state the renderer draws from
type View struct {
	Message       string
	Line          string
	ActiveDefault string
	Answered      bool
	Answer        string
	Matches       []string // every match, in glob order
	Page          Pagination
	Notice        string // validation error, if any
}

// Renderer turns a View into the header line and the detail block
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer; nil styles render plain text
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = PlainStyles()
	}
	return &Renderer{styles: styles}
}

// Render returns the content and bottom content for v. It has no side effects.
func (r *Renderer) Render(v View) (string, string) {
	return r.header(v), r.detail(v)
}

func (r *Renderer) header(v View) string {
	var b strings.Builder
	b.WriteString(r.styles.Prefix.Render("?"))
	b.WriteString(" ")
	b.WriteString(r.styles.Message.Render(v.Message))
	b.WriteString(" ")

	if v.Answered {
		b.WriteString(r.styles.Answer.Render(v.Answer))
		return b.String()
	}

	if v.ActiveDefault != "" {
		b.WriteString(r.styles.Default.Render("(" + v.ActiveDefault + ")"))
		b.WriteString(" ")
	}
	b.WriteString(v.Line)
	return b.String()
}

func (r *Renderer) detail(v View) string {
	if v.Answered {
		return ""
	}

	var b strings.Builder
	if len(v.Matches) > 0 {
		// one Render per line; lipgloss pads multi-line blocks to a common width
		for i, path := range v.Page.Window(v.Matches) {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(r.styles.Match.Render("- " + path))
		}

		fmt.Fprintf(&b, "\n%d matching file", len(v.Matches))
		if len(v.Matches) != 1 {
			b.WriteString("s")
		}
		if v.Page.Count() > 1 {
			fmt.Fprintf(&b, " (page %d of %d ↑↓)", v.Page.Index()+1, v.Page.Count())
		}
	} else {
		b.WriteString(r.styles.Empty.Render("No matching files..."))
	}

	if v.Notice != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.styles.Error.Render(">>"))
		b.WriteString(" ")
		b.WriteString(v.Notice)
	}
	return b.String()
}
