package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"globprompt/internal/config"
	"globprompt/internal/eventbus"
	"globprompt/internal/output"
	"globprompt/internal/prompt"
)

// RootCommand builds the globprompt command tree
func (a *App) RootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "globprompt [default-pattern]",
		Short: "Pick files interactively with a glob pattern",
		Long: `globprompt asks for a glob pattern and lists the matching files while you type.
On enter the matching paths are printed, one per line or as JSON or YAML.

Use the arrow keys (or ctrl+n / ctrl+p) to page through long lists.
Press esc or ctrl+c to cancel.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.openLog(f.logFile)
			a.runID = uuid.NewString()
			log.Printf("globprompt %s starting (run %s)", a.Version, a.runID)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Prompt.Default = args[0]
			}
			return a.runPrompt(cmd.Context(), cfg)
		},
	}
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	f.bindPersistent(root)
	f.bindPrompt(root)

	root.AddCommand(
		a.matchCommand(f),
		a.configCommand(f),
		a.versionCommand(),
	)
	return root
}

// Execute runs the command tree until it finishes or a signal arrives
func (a *App) Execute(args []string) error {
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	root := a.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// loadConfig reads the config file and applies the command line on top
func (a *App) loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if f.configPath != "" {
		cfg, err = config.NewConfigService(".").LoadFromPath(f.configPath)
	} else {
		var dir string
		if dir, err = workDir(f); err != nil {
			return nil, err
		}
		svc := config.NewConfigService(dir)
		cfg, err = svc.Load()
		if err == nil {
			log.Printf("Loaded config from %s", svc.Path())
		}
	}
	if err != nil {
		return nil, err
	}

	f.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Glob.Cwd != "" {
		// Resolve to absolute path
		if cfg.Glob.Cwd, err = filepath.Abs(cfg.Glob.Cwd); err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}
	}
	if cfg.Output.LogFile != "" && !cmd.Flags().Changed("log-file") {
		a.openLog(cfg.Output.LogFile)
	}

	a.Logger.SetNoColor(cfg.Output.NoColor)
	return cfg, nil
}

func (a *App) runPrompt(ctx context.Context, cfg *config.Config) error {
	if !a.IsTerminal() {
		pattern := cfg.Prompt.Default
		if pattern == "" {
			pattern = "*"
		}
		a.Logger.Warn("not a terminal, matching %q without prompting", pattern)
		return a.match(ctx, cfg, pattern)
	}

	bus := eventbus.New()
	bus.Subscribe(eventbus.EventAnswered, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AnsweredEvent); ok {
			log.Printf("Prompt %s answered with %q (%d paths)", event.Session, event.Pattern, len(event.Paths))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	var styles *prompt.Styles
	if !cfg.Output.NoColor {
		styles = prompt.NewStyles()
	}

	q := cfg.Question()
	q.Session = a.runID
	paths, err := a.Prompt(ctx, bus, q, a.Glob, styles)
	if err != nil {
		return err
	}
	return a.deliver(cfg, paths)
}

// match globs pattern without prompting and delivers the result
func (a *App) match(ctx context.Context, cfg *config.Config, pattern string) error {
	paths, err := a.Glob(ctx, pattern, cfg.Glob)
	if err != nil {
		return err
	}
	return a.deliver(cfg, paths)
}

// deliver prints the paths and hands them to the clipboard and pager when asked
func (a *App) deliver(cfg *config.Config, paths []string) error {
	if err := output.WriteResult(a.Stdout, paths, cfg.Output.Format); err != nil {
		return err
	}

	if cfg.Output.Copy {
		if err := a.Copy(paths); err != nil {
			a.Logger.Warn("%v", err)
		} else {
			a.Logger.Success("Copied %d paths to the clipboard", len(paths))
		}
	}

	if cfg.Output.Pager && len(paths) > 0 {
		content, err := output.FormatResult(paths, cfg.Output.Format)
		if err != nil {
			return err
		}
		if err := a.Pager(content); err != nil {
			return err
		}
	}
	return nil
}

// openLog points the standard logger at path, replacing any earlier log file
func (a *App) openLog(path string) {
	a.closeLog()
	logFile, err := setupLogging(path)
	if err != nil {
		a.Logger.Warn("%v", err)
		return
	}
	a.logFile = logFile
}

func (a *App) closeLog() {
	if a.logFile != nil {
		log.SetOutput(io.Discard)
		a.logFile.Close()
		a.logFile = nil
	}
}

// setupLogging sends the standard logger to path, or to the user cache
// directory when path is empty
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}
		path = filepath.Join(cacheDir, "globprompt", "globprompt.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return logFile, nil
}
