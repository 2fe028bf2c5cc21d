package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"globprompt/internal/domain"
)

// fakeLine is a line buffer that the tests edit directly, the way a real
// line editor applies a key before emitting the keypress
type fakeLine struct {
	line string
}

func (l *fakeLine) Line() string        { return l.line }
func (l *fakeLine) SetLine(line string) { l.line = line }

type fakeScreen struct {
	content string
	bottom  string
	renders int
	done    int
}

func (s *fakeScreen) Render(content, bottom string) {
	s.content = content
	s.bottom = bottom
	s.renders++
}

func (s *fakeScreen) Done() { s.done++ }

// fakeRunner records queries; tests resolve them explicitly and in any order
type fakeRunner struct {
	queries []Query
}

func (r *fakeRunner) Run(q Query) { r.queries = append(r.queries, q) }

func (r *fakeRunner) last(t *testing.T) Query {
	t.Helper()
	require.NotEmpty(t, r.queries, "no query issued")
	return r.queries[len(r.queries)-1]
}

type harness struct {
	t      *testing.T
	line   *fakeLine
	screen *fakeScreen
	runner *fakeRunner
	c      *Controller
}

func newHarness(t *testing.T, q Question) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		line:   &fakeLine{},
		screen: &fakeScreen{},
		runner: &fakeRunner{},
	}
	h.c = NewController(NewConfig(q), h.line, h.screen, h.runner, nil)
	return h
}

// resolveLast answers the newest query with paths
func (h *harness) resolveLast(paths ...string) {
	h.t.Helper()
	h.c.Resolve(Result{Token: h.runner.last(h.t).Token, Paths: paths})
}

// typeText appends text one rune at a time, emitting a keypress per rune
func (h *harness) typeText(text string) {
	for _, r := range text {
		h.line.line += string(r)
		h.c.HandleKeypress(domain.Key{Name: string(r), Sequence: string(r)})
	}
}

// backspace removes the last rune and emits the keypress
func (h *harness) backspace() {
	if runes := []rune(h.line.line); len(runes) > 0 {
		h.line.line = string(runes[:len(runes)-1])
	}
	h.c.HandleKeypress(domain.Key{Name: "backspace"})
}

func (h *harness) press(name string, ctrl bool) {
	h.c.HandleKeypress(domain.Key{Name: name, Ctrl: ctrl})
}

func paths(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + string(rune('a'+i))
	}
	return out
}
