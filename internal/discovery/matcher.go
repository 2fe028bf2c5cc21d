package discovery

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher is a compiled glob pattern.
// `*` stays within a path segment; `**` crosses segments and may also
// stand for zero directories (so `**/*.go` matches `main.go`).
type Matcher struct {
	pattern    string
	globs      []glob.Glob
	ignoreCase bool
}

// Compile compiles pattern for matching slash-separated paths
func Compile(pattern string, ignoreCase bool) (*Matcher, error) {
	p := pattern
	if ignoreCase {
		p = strings.ToLower(p)
	}

	m := &Matcher{pattern: pattern, ignoreCase: ignoreCase}
	for _, variant := range globstarVariants(p) {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether the slash-separated path matches the pattern
func (m *Matcher) Match(p string) bool {
	if m.ignoreCase {
		p = strings.ToLower(p)
	}
	for _, g := range m.globs {
		if g.Match(p) {
			return true
		}
	}
	return false
}

// String returns the pattern the matcher was compiled from
func (m *Matcher) String() string {
	return m.pattern
}

// maxGlobstars caps the `**/` segments expanded into zero-directory
// variants; past it only the full and fully collapsed forms are compiled
const maxGlobstars = 6

// globstarVariants returns the pattern plus one copy for every combination
// of `**/` segments collapsed, covering each zero-directory case
func globstarVariants(p string) []string {
	segments := strings.Split(p, "/")
	var stars []int
	for i, seg := range segments[:len(segments)-1] {
		if seg == "**" {
			stars = append(stars, i)
		}
	}
	if len(stars) == 0 {
		return []string{p}
	}

	masks := []int{0}
	if len(stars) <= maxGlobstars {
		for mask := 1; mask < 1<<len(stars); mask++ {
			masks = append(masks, mask)
		}
	} else {
		masks = append(masks, 1<<len(stars)-1)
	}

	seen := make(map[string]bool, len(masks))
	variants := make([]string, 0, len(masks))
	for _, mask := range masks {
		drop := make(map[int]bool, len(stars))
		for bit, idx := range stars {
			if mask&(1<<bit) != 0 {
				drop[idx] = true
			}
		}

		kept := make([]string, 0, len(segments))
		for i, seg := range segments {
			if !drop[i] {
				kept = append(kept, seg)
			}
		}
		v := strings.Join(kept, "/")
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}
