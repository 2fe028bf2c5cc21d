package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"globprompt/internal/config"
	"globprompt/internal/interactive"
)

func (a *App) matchCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern>",
		Short: "Print the paths matching a pattern without prompting",
		Example: `  globprompt match '**/*.go' --ignore vendor
  globprompt match 'src/*' --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return a.match(cmd.Context(), cfg, args[0])
		},
	}
}

func (a *App) configCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the globprompt configuration",
	}

	var global, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file interactively",
		Long: `Asks for each setting and writes .globprompt.toml in the working directory,
or the user config file with --global.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.initPath(f, global)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := a.setup(cfg); err != nil {
				return err
			}

			if err := config.NewConfigService(filepath.Dir(path)).SaveToPath(cfg, path); err != nil {
				return err
			}
			a.Logger.Success("Wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&global, "global", "g", false, "Write the user config instead of the project file")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, f)
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = a.Stdout.Write(data)
			return err
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file globprompt reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.configPath != "" {
				fmt.Fprintln(a.Stdout, f.configPath)
				return nil
			}
			dir, err := workDir(f)
			if err != nil {
				return err
			}
			svc := config.NewConfigService(dir)
			if _, err := svc.Load(); err != nil {
				return err
			}
			fmt.Fprintln(a.Stdout, svc.Path())
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of globprompt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.Stdout, "globprompt version %s\n", a.Version)
		},
	}
}

func (a *App) initPath(f *flags, global bool) (string, error) {
	if f.configPath != "" {
		return f.configPath, nil
	}
	if global {
		return config.UserConfigPath(), nil
	}
	dir, err := workDir(f)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.ProjectFileName), nil
}

func (a *App) setup(cfg *config.Config) error {
	if !a.IsTerminal() {
		return errors.New("config init needs a terminal")
	}
	return interactive.Setup(a.Asker, cfg)
}

func workDir(f *flags) (string, error) {
	if f.cwd != "" {
		return f.cwd, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return dir, nil
}
