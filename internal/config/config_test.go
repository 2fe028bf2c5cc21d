package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globprompt/internal/output"
)

func newTestService(t *testing.T) (*configService, string) {
	t.Helper()
	dir := t.TempDir()
	cs := &configService{
		projectPath: filepath.Join(dir, "project", ProjectFileName),
		userPath:    filepath.Join(dir, "user", "config.toml"),
		filePath:    filepath.Join(dir, "user", "config.toml"),
	}
	return cs, dir
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cs, _ := newTestService(t)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, cs.userPath, cs.Path())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs, _ := newTestService(t)

	cfg := DefaultConfig()
	cfg.Prompt.Message = "Which files?"
	cfg.Prompt.Default = "**/*.go"
	cfg.Prompt.ForceMatch = true
	cfg.Glob.Ignore = []string{"vendor", "node_modules"}
	cfg.Glob.Dot = true
	cfg.Output.Format = output.FormatJSON

	require.NoError(t, cs.Save(cfg))
	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestProjectFileWins(t *testing.T) {
	cs, _ := newTestService(t)

	user := DefaultConfig()
	user.Prompt.Message = "user"
	require.NoError(t, cs.SaveToPath(user, cs.userPath))

	project := DefaultConfig()
	project.Prompt.Message = "project"
	require.NoError(t, cs.SaveToPath(project, cs.projectPath))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.Prompt.Message)
	assert.Equal(t, cs.projectPath, cs.Path())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	cs, dir := newTestService(t)
	path := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("[prompt]\ndefault = \"*.md\"\n"), 0644))

	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "*.md", cfg.Prompt.Default)
	assert.Equal(t, "Select files:", cfg.Prompt.Message)
	assert.Equal(t, 10, cfg.Prompt.PageSize)
	assert.Equal(t, output.FormatLines, cfg.Output.Format)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	cs, dir := newTestService(t)

	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[prompt\n"},
		{"unknown key", "[prompt]\ncolour = true\n"},
		{"bad format", "[output]\nformat = \"xml\"\n"},
		{"negative page size", "[prompt]\npage_size = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := cs.LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromMissingPath(t *testing.T) {
	cs, dir := newTestService(t)
	_, err := cs.LoadFromPath(filepath.Join(dir, "nope.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestQuestion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prompt.Default = "*.go"
	cfg.Glob.Deep = 3

	q := cfg.Question()
	assert.Equal(t, "Select files:", q.Message)
	assert.Equal(t, "*.go", q.Default)
	assert.Equal(t, 3, q.Glob.Deep)
}
