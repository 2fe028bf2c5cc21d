package cli

import (
	"github.com/spf13/cobra"

	"globprompt/internal/config"
)

// flags holds command line values; only flags the user set override the config
type flags struct {
	configPath string
	logFile    string

	message    string
	def        string
	pageSize   int
	forceMatch bool

	cwd        string
	ignore     []string
	dot        bool
	dirs       bool
	onlyDirs   bool
	markDirs   bool
	absolute   bool
	deep       int
	ignoreCase bool

	format  string
	copy    bool
	pager   bool
	noColor bool
}

// bindPersistent registers the flags shared by the root and match commands
func (f *flags) bindPersistent(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.configPath, "config", "", "Config file (default: .globprompt.toml, then the user config)")
	fs.StringVar(&f.logFile, "log-file", "", "Debug log file (default: in the user cache directory)")

	fs.StringVarP(&f.cwd, "cwd", "C", "", "Directory to match in")
	fs.StringSliceVarP(&f.ignore, "ignore", "i", nil, "Pattern of paths to skip (repeatable)")
	fs.BoolVar(&f.dot, "dot", false, "Match hidden files and directories")
	fs.BoolVar(&f.dirs, "dirs", false, "Match directories as well as files")
	fs.BoolVar(&f.onlyDirs, "only-dirs", false, "Match directories only")
	fs.BoolVar(&f.markDirs, "mark-dirs", false, "Append / to matched directories")
	fs.BoolVar(&f.absolute, "absolute", false, "Print absolute paths")
	fs.IntVar(&f.deep, "deep", 0, "Maximum directory depth below the pattern base (0 for unlimited)")
	fs.BoolVar(&f.ignoreCase, "ignore-case", false, "Match case-insensitively")

	fs.StringVarP(&f.format, "format", "f", "", "Output format: lines, json or yaml")
	fs.BoolVar(&f.copy, "copy", false, "Copy the selected paths to the clipboard")
	fs.BoolVar(&f.pager, "pager", false, "Show the selected paths in a pager")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
}

// bindPrompt registers the flags that only make sense for the interactive prompt
func (f *flags) bindPrompt(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.message, "message", "m", "", "Question shown before the pattern")
	fs.StringVarP(&f.def, "default", "d", "", "Pattern used while the line is empty")
	fs.IntVarP(&f.pageSize, "page-size", "n", 0, "Paths per page")
	fs.BoolVar(&f.forceMatch, "force-match", false, "Refuse to submit a pattern without matches")
}

// apply copies every flag the user set onto cfg
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("log-file") {
		cfg.Output.LogFile = f.logFile
	}
	if changed("message") {
		cfg.Prompt.Message = f.message
	}
	if changed("default") {
		cfg.Prompt.Default = f.def
	}
	if changed("page-size") {
		cfg.Prompt.PageSize = f.pageSize
	}
	if changed("force-match") {
		cfg.Prompt.ForceMatch = f.forceMatch
	}

	if changed("cwd") {
		cfg.Glob.Cwd = f.cwd
	}
	if changed("ignore") {
		cfg.Glob.Ignore = append(cfg.Glob.Ignore, f.ignore...)
	}
	if changed("dot") {
		cfg.Glob.Dot = f.dot
	}
	if changed("dirs") {
		cfg.Glob.IncludeDirs = f.dirs
	}
	if changed("only-dirs") {
		cfg.Glob.OnlyDirs = f.onlyDirs
	}
	if changed("mark-dirs") {
		cfg.Glob.MarkDirs = f.markDirs
	}
	if changed("absolute") {
		cfg.Glob.Absolute = f.absolute
	}
	if changed("deep") {
		cfg.Glob.Deep = f.deep
	}
	if changed("ignore-case") {
		cfg.Glob.IgnoreCase = f.ignoreCase
	}

	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("copy") {
		cfg.Output.Copy = f.copy
	}
	if changed("pager") {
		cfg.Output.Pager = f.pager
	}
	if changed("no-color") {
		cfg.Output.NoColor = f.noColor
	}
}
