package prompt

import "globprompt/internal/discovery"

// DefaultPageSize is the number of paths shown per page when none is configured
const DefaultPageSize = 10

// Question describes a glob prompt as supplied by the caller
type Question struct {
	Message    string
	Default    string // empty means no default pattern
	PageSize   int
	ForceMatch bool
	Glob       discovery.Options
	Session    string // id used in logs and events; generated when empty
}

// Config is the normalized, read-only configuration of one prompt
type Config struct {
	message    string
	def        string
	pageSize   int
	forceMatch bool
	glob       discovery.Options
	session    string
}

// NewConfig normalizes a question into a prompt configuration
func NewConfig(q Question) Config {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	opts := q.Glob
	opts.Ignore = append([]string(nil), q.Glob.Ignore...)

	return Config{
		message:    q.Message,
		def:        q.Default,
		pageSize:   size,
		forceMatch: q.ForceMatch,
		glob:       opts,
		session:    q.Session,
	}
}

// Message returns the question text
func (c Config) Message() string { return c.message }

// Default returns the default pattern, or "" when none is configured
func (c Config) Default() string { return c.def }

func (c Config) PageSize() int { return c.pageSize }

func (c Config) ForceMatch() bool { return c.forceMatch }

// GlobOptions returns a copy of the options passed to the glob function
func (c Config) GlobOptions() discovery.Options {
	opts := c.glob
	opts.Ignore = append([]string(nil), c.glob.Ignore...)
	return opts
}
