package prompt

import (
	"log"

	"github.com/google/uuid"

	"globprompt/internal/domain"
	"globprompt/internal/eventbus"
)

// MsgPatternRequired is shown when a submission is rejected for lack of matches
const MsgPatternRequired = "A matching pattern is required"

// fallbackPattern is queried when the line is empty and no default is configured
const fallbackPattern = "*"

// Status is the lifecycle state of a prompt
type Status int

const (
	StatusPending Status = iota
	StatusAnswered
)

func (s Status) String() string {
	if s == StatusAnswered {
		return "answered"
	}
	return "pending"
}

// Controller is the glob prompt state machine. All methods must be called
// from a single goroutine: the one delivering input events and query results.
type Controller struct {
	id       string
	cfg      Config
	rl       LineEditor
	screen   Screen
	runner   Runner
	bus      eventbus.EventBus // optional
	renderer *Renderer

	activeDefault string
	query         queryState
	page          Pagination
	notice        string

	status     Status
	answerText string
	answer     []string
	done       chan struct{}
}

// NewController creates a prompt controller. bus may be nil.
func NewController(cfg Config, rl LineEditor, screen Screen, runner Runner, bus eventbus.EventBus) *Controller {
	id := cfg.session
	if id == "" {
		id = uuid.NewString()
	}
	return &Controller{
		id:       id,
		cfg:      cfg,
		rl:       rl,
		screen:   screen,
		runner:   runner,
		bus:      bus,
		renderer: NewRenderer(nil),
		page:     NewPagination(cfg.PageSize()),
		done:     make(chan struct{}),
	}
}

// SetStyles replaces the styles used for rendering
func (c *Controller) SetStyles(styles *Styles) {
	c.renderer = NewRenderer(styles)
}

// ID returns the session id used in logs and events
func (c *Controller) ID() string {
	return c.id
}

// Start draws the initial state and queries the default pattern
func (c *Controller) Start() {
	c.activeDefault = c.cfg.Default()
	c.render()
	c.issueQuery(c.effectivePattern())
}

// HandleKeypress reacts to a key the line editor has already applied
func (c *Controller) HandleKeypress(key domain.Key) {
	if c.status != StatusPending {
		return
	}
	c.notice = ""

	switch {
	case isPageDown(key):
		c.page.Forward()
		c.render()
	case isPageUp(key):
		c.page.Backward()
		c.render()
	default:
		if c.rl.Line() != "" {
			c.activeDefault = ""
		} else {
			c.activeDefault = c.cfg.Default()
		}

		// Draw with the current matches before the new query resolves
		c.render()

		if pattern := c.effectivePattern(); pattern != c.query.pattern {
			c.issueQuery(pattern)
		}
	}
}

// HandleSubmit reacts to the line being submitted with the given text
func (c *Controller) HandleSubmit(text string) {
	if c.status != StatusPending {
		return
	}

	if c.cfg.ForceMatch() && len(c.query.matches) == 0 {
		c.notice = MsgPatternRequired
		c.render()
		return
	}

	answer := text
	if answer == "" {
		answer = c.rl.Line()
	}
	if answer == "" {
		answer = c.cfg.Default()
	}

	c.answerText = answer
	c.answer = append([]string{}, c.query.matches...)
	c.status = StatusAnswered
	c.notice = ""
	c.rl.SetLine("")
	c.render()
	c.screen.Done()
	close(c.done)

	log.Printf("[prompt %s] answered %q with %d paths", c.id, answer, len(c.answer))
	paths, _ := c.Answer()
	c.publish(domain.AnsweredEvent{Session: c.id, Pattern: answer, Paths: paths})
}

// Resolve applies the result of a query. Results of superseded queries are
// dropped without touching any state.
func (c *Controller) Resolve(res Result) {
	if c.status != StatusPending {
		return
	}

	paths := res.Paths
	if res.Err != nil {
		paths = nil
	}
	if !c.query.accept(res.Token, paths) {
		log.Printf("[prompt %s] discarding stale query %d (pending %d)", c.id, res.Token, c.query.pending)
		c.publish(domain.QueryDiscardedEvent{Session: c.id, Token: res.Token, Pending: c.query.pending})
		return
	}

	if res.Err != nil {
		log.Printf("[prompt %s] glob %q failed: %v", c.id, c.query.pattern, res.Err)
		c.publish(domain.ErrorEvent{Message: "glob " + c.query.pattern + " failed", Err: res.Err})
	}
	c.page.Reset(len(c.query.matches))
	c.notice = ""
	c.render()

	c.publish(domain.QueryResolvedEvent{
		Session: c.id,
		Token:   res.Token,
		Pattern: c.query.pattern,
		Matches: len(c.query.matches),
		Err:     res.Err,
	})
}

// RenderContent returns what the screen currently shows
func (c *Controller) RenderContent() (string, string) {
	return c.renderer.Render(c.view())
}

// Status returns the lifecycle state
func (c *Controller) Status() Status {
	return c.status
}

// Answer returns the matches captured at submission and whether the prompt
// has been answered
func (c *Controller) Answer() ([]string, bool) {
	if c.status != StatusAnswered {
		return nil, false
	}
	return append([]string{}, c.answer...), true
}

// Done is closed once the prompt has been answered
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Matches returns the current match list
func (c *Controller) Matches() []string {
	return append([]string(nil), c.query.matches...)
}

// Pattern returns the pattern of the newest query
func (c *Controller) Pattern() string {
	return c.query.pattern
}

// Page returns the pagination state
func (c *Controller) Page() Pagination {
	return c.page
}

func (c *Controller) effectivePattern() string {
	if line := c.rl.Line(); line != "" {
		return line
	}
	if c.activeDefault != "" {
		return c.activeDefault
	}
	return fallbackPattern
}

func (c *Controller) issueQuery(pattern string) {
	token := c.query.issue(pattern)
	log.Printf("[prompt %s] query %d for %q", c.id, token, pattern)
	c.publish(domain.QueryIssuedEvent{Session: c.id, Token: token, Pattern: pattern})
	c.runner.Run(Query{Token: token, Pattern: pattern, Options: c.cfg.GlobOptions()})
}

func (c *Controller) view() View {
	return View{
		Message:       c.cfg.Message(),
		Line:          c.rl.Line(),
		ActiveDefault: c.activeDefault,
		Answered:      c.status == StatusAnswered,
		Answer:        c.answerText,
		Matches:       c.query.matches,
		Page:          c.page,
		Notice:        c.notice,
	}
}

func (c *Controller) render() {
	c.screen.Render(c.RenderContent())
}

func (c *Controller) publish(event domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

func isPageDown(key domain.Key) bool {
	return key.Is("down", false) || key.Is("n", true)
}

func isPageUp(key domain.Key) bool {
	return key.Is("up", false) || key.Is("p", true)
}
