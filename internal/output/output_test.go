package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	paths := []string{"a.go", "dir/b.go"}

	tests := []struct {
		format string
		paths  []string
		want   string
	}{
		{FormatLines, paths, "a.go\ndir/b.go\n"},
		{"", paths, "a.go\ndir/b.go\n"},
		{FormatLines, nil, ""},
		{FormatJSON, paths, "[\n  \"a.go\",\n  \"dir/b.go\"\n]\n"},
		{FormatJSON, nil, "[]\n"},
		{FormatYAML, paths, "- a.go\n- dir/b.go\n"},
		{FormatYAML, nil, "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteResult(&buf, tt.paths, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteResultUnknownFormat(t *testing.T) {
	_, err := FormatResult([]string{"a"}, "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestCopyResult(t *testing.T) {
	var copied string
	orig := Copy
	t.Cleanup(func() { Copy = orig })

	Copy = func(text string) error {
		copied = text
		return nil
	}
	require.NoError(t, CopyResult([]string{"a", "b"}))
	assert.Equal(t, "a\nb", copied)

	Copy = func(string) error { return errors.New("no clipboard") }
	assert.ErrorContains(t, CopyResult([]string{"a"}), "failed to copy to clipboard")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf)
	l.SetNoColor(true)

	l.Info("found %d files", 3)
	l.Warn("careful")
	l.Error("broken")
	l.Success("done")
	assert.Equal(t, "found 3 files\nWarning: careful\nError: broken\n✓ done\n", buf.String())

	buf.Reset()
	l.SetQuiet(true)
	l.Info("hidden")
	l.Success("hidden")
	l.Warn("shown")
	assert.Equal(t, "Warning: shown\n", buf.String())
}
