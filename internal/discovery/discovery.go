package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// GlobFunc resolves a pattern to an ordered list of matching paths
type GlobFunc func(ctx context.Context, pattern string, opts Options) ([]string, error)

// Options controls how Glob walks the filesystem.
// The zero value matches files only, skips hidden entries and walks
// relative to the process working directory.
type Options struct {
	Cwd         string   `toml:"cwd,omitempty" json:"cwd,omitempty" yaml:"cwd,omitempty"`
	Ignore      []string `toml:"ignore,omitempty" json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Dot         bool     `toml:"dot" json:"dot" yaml:"dot"`
	IncludeDirs bool     `toml:"include_dirs" json:"include_dirs" yaml:"include_dirs"`
	OnlyDirs    bool     `toml:"only_dirs" json:"only_dirs" yaml:"only_dirs"`
	MarkDirs    bool     `toml:"mark_dirs" json:"mark_dirs" yaml:"mark_dirs"`
	Absolute    bool     `toml:"absolute" json:"absolute" yaml:"absolute"`
	Deep        int      `toml:"deep" json:"deep" yaml:"deep"` // 0 means unlimited
	IgnoreCase  bool     `toml:"ignore_case" json:"ignore_case" yaml:"ignore_case"`
}

// Glob walks the static base directory of pattern and returns every entry
// matching it, in walk order, as slash-separated paths relative to opts.Cwd
func Glob(ctx context.Context, pattern string, opts Options) ([]string, error) {
	pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
	if pattern == "" {
		return nil, nil
	}

	matcher, err := Compile(pattern, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}

	ignores := make([]*Matcher, 0, len(opts.Ignore))
	for _, ig := range opts.Ignore {
		m, err := Compile(strings.TrimPrefix(filepath.ToSlash(ig), "./"), opts.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", ig, err)
		}
		ignores = append(ignores, m)
	}

	cwd := opts.Cwd
	if cwd == "" {
		if cwd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	base := staticBase(pattern)
	root := filepath.FromSlash(base)
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}
	explicitDot := namesDotEntry(pattern)
	limit := depthLimit(strings.TrimPrefix(strings.TrimPrefix(pattern, base), "/"))

	var out []string
	err = walkDir(root, func(p string, d fs.DirEntry, err error) error {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip on error
		if err != nil {
			log.Printf("Error walking path %s: %v", p, err)
			return nil
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		candidate := rel
		if base != "" {
			candidate = path.Join(base, rel)
		}

		if !opts.Dot && !explicitDot && strings.HasPrefix(d.Name(), ".") {
			return skip(d)
		}
		for _, ig := range ignores {
			if ig.Match(candidate) {
				return skip(d)
			}
		}

		depth := strings.Count(rel, "/")
		if opts.Deep > 0 && depth >= opts.Deep {
			return skip(d)
		}

		if wanted(d, opts) && matcher.Match(candidate) {
			out = append(out, format(candidate, d, cwd, opts))
		}
		if limit >= 0 && depth >= limit {
			return skip(d)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}
	return out, nil
}

// walkDir is swapped in tests to observe which paths are visited
var walkDir = filepath.WalkDir

// depthLimit returns the deepest directory level, relative to the static
// base, a pattern rest can match at. It returns -1 when the rest contains a
// globstar or a brace group spanning segments, which can match at any depth.
func depthLimit(rest string) int {
	if strings.Contains(rest, "**") {
		return -1
	}
	braces := 0
	for _, r := range rest {
		switch r {
		case '{':
			braces++
		case '}':
			if braces > 0 {
				braces--
			}
		case '/':
			if braces > 0 {
				return -1
			}
		}
	}
	return strings.Count(rest, "/")
}

func skip(d fs.DirEntry) error {
	if d.IsDir() {
		return filepath.SkipDir
	}
	return nil
}

func wanted(d fs.DirEntry, opts Options) bool {
	if opts.OnlyDirs {
		return d.IsDir()
	}
	return opts.IncludeDirs || !d.IsDir()
}

func format(candidate string, d fs.DirEntry, cwd string, opts Options) string {
	out := candidate
	if opts.Absolute && !path.IsAbs(out) {
		out = filepath.ToSlash(filepath.Join(cwd, filepath.FromSlash(out)))
	}
	if opts.MarkDirs && d.IsDir() {
		out += "/"
	}
	return out
}

// staticBase returns the leading path segments of pattern that contain no
// glob syntax. A pattern without any glob syntax yields its parent directory.
func staticBase(pattern string) string {
	segments := strings.Split(pattern, "/")
	static := 0
	for static < len(segments) && !hasMeta(segments[static]) {
		static++
	}
	if static == len(segments) {
		static--
	}

	base := strings.Join(segments[:static], "/")
	if base == "" && strings.HasPrefix(pattern, "/") {
		return "/"
	}
	return base
}

// namesDotEntry reports whether the pattern spells out a hidden segment,
// in which case hidden entries are walked even without Options.Dot
func namesDotEntry(pattern string) bool {
	for _, seg := range strings.Split(pattern, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}

func hasMeta(segment string) bool {
	return strings.ContainsAny(segment, `*?[]{}\!`)
}
