package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger prints colored user feedback. Everything goes to stderr so stdout
// only ever carries the selected paths.
type Logger struct {
	errOut  io.Writer
	noColor bool
	quiet   bool
}

// NewLogger creates a new Logger instance.
func NewLogger() *Logger {
	return &Logger{errOut: os.Stderr}
}

// NewLoggerTo creates a Logger writing to w, used by tests.
func NewLoggerTo(w io.Writer) *Logger {
	return &Logger{errOut: w}
}

// SetNoColor disables colored output.
func (l *Logger) SetNoColor(noColor bool) {
	l.noColor = noColor
	color.NoColor = noColor
}

// SetQuiet suppresses Info and Success messages.
func (l *Logger) SetQuiet(quiet bool) {
	l.quiet = quiet
}

// Info prints an informational message in default color.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.errOut, format+"\n", args...)
}

// Warn prints a warning message in yellow.
func (l *Logger) Warn(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(l.errOut, "Warning: "+format+"\n", args...)
}

// Error prints an error message in red.
func (l *Logger) Error(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(l.errOut, "Error: "+format+"\n", args...)
}

// Success prints a success message in green with checkmark.
func (l *Logger) Success(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	green := color.New(color.FgGreen)
	green.Fprintf(l.errOut, "✓ "+format+"\n", args...)
}
