package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"globprompt/internal/discovery"
	"globprompt/internal/output"
	"globprompt/internal/prompt"
)

// ProjectFileName is looked up in the working directory before the user config
const ProjectFileName = ".globprompt.toml"

// Config represents the application configuration
type Config struct {
	Version int               `toml:"version"`
	Prompt  PromptSettings    `toml:"prompt"`
	Glob    discovery.Options `toml:"glob"`
	Output  OutputSettings    `toml:"output"`
}

// PromptSettings holds the question shown to the user
type PromptSettings struct {
	Message    string `toml:"message"`
	Default    string `toml:"default"`
	PageSize   int    `toml:"page_size"`
	ForceMatch bool   `toml:"force_match"`
}

// OutputSettings controls what happens with the selected paths
type OutputSettings struct {
	Format  string `toml:"format"` // lines, json or yaml
	Copy    bool   `toml:"copy"`
	Pager   bool   `toml:"pager"`
	NoColor bool   `toml:"no_color"`
	LogFile string `toml:"log_file,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	projectPath string
	userPath    string
	filePath    string // where Load found the config, or where Save writes
}

// NewConfigService creates a config service looking for a project file in workDir
// and falling back to the user config directory
func NewConfigService(workDir string) ConfigService {
	return &configService{
		projectPath: filepath.Join(workDir, ProjectFileName),
		userPath:    UserConfigPath(),
		filePath:    UserConfigPath(),
	}
}

// UserConfigPath returns the per-user config file location
func UserConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "globprompt", "config.toml")
}

// Load loads the project config, else the user config, else the defaults
func (cs *configService) Load() (*Config, error) {
	for _, path := range []string{cs.projectPath, cs.userPath} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := cs.LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		cs.filePath = path
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// Save saves the configuration to the file Load used
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// Path returns the file Save writes to
func (cs *configService) Path() string {
	return cs.filePath
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values a config file could get wrong
func (c *Config) Validate() error {
	switch c.Output.Format {
	case output.FormatLines, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Prompt.PageSize < 0 {
		return fmt.Errorf("page_size must not be negative, got %d", c.Prompt.PageSize)
	}
	if c.Glob.Deep < 0 {
		return fmt.Errorf("deep must not be negative, got %d", c.Glob.Deep)
	}
	return nil
}

// Question builds the prompt question described by the config
func (c *Config) Question() prompt.Question {
	return prompt.Question{
		Message:    c.Prompt.Message,
		Default:    c.Prompt.Default,
		PageSize:   c.Prompt.PageSize,
		ForceMatch: c.Prompt.ForceMatch,
		Glob:       c.Glob,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Prompt: PromptSettings{
			Message:  "Select files:",
			PageSize: prompt.DefaultPageSize,
		},
		Output: OutputSettings{
			Format: output.FormatLines,
		},
	}
}
