package prompt

import "globprompt/internal/discovery"

// LineEditor is the editable line buffer of the host line editor
type LineEditor interface {
	Line() string
	SetLine(line string)
}

// Screen draws the prompt. Render replaces the whole drawing; Done
// finalizes it once the prompt has been answered.
type Screen interface {
	Render(content, bottom string)
	Done()
}

// Query is one glob invocation issued by the controller
type Query struct {
	Token   uint64
	Pattern string
	Options discovery.Options
}

// Result is the outcome of a Query, handed back to Controller.Resolve
type Result struct {
	Token uint64
	Paths []string
	Err   error
}

// Runner starts a query without blocking. Its Result must be delivered to
// Controller.Resolve on the same goroutine that drives the controller.
type Runner interface {
	Run(q Query)
}

// RunnerFunc adapts a function to the Runner interface
type RunnerFunc func(q Query)

// Run calls f(q)
func (f RunnerFunc) Run(q Query) { f(q) }
