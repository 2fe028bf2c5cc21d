package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"globprompt/internal/discovery"
	"globprompt/internal/domain"
	"globprompt/internal/eventbus"
	"globprompt/internal/prompt"
)

// Model hosts a glob prompt inside a Bubble Tea program.
// The text input plays the line editor; keys reach the controller through
// the event bus, and glob queries run as commands.
type Model struct {
	ctx  context.Context
	bus  eventbus.EventBus
	glob discovery.GlobFunc

	input   textinput.Model
	screen  *screen
	ctrl    *prompt.Controller
	adapter *prompt.InputAdapter

	width   int
	pending []tea.Cmd // queries issued since the last flush
	aborted bool
}

// lineEditor exposes the model's text input to the controller
type lineEditor struct {
	m *Model
}

func (l lineEditor) Line() string        { return l.m.input.Value() }
func (l lineEditor) SetLine(line string) { l.m.input.SetValue(line) }

// NewModel creates a UI model for question q. styles may be nil for plain output.
func NewModel(ctx context.Context, bus eventbus.EventBus, q prompt.Question, glob discovery.GlobFunc, styles *prompt.Styles) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	m := &Model{
		ctx:    ctx,
		bus:    bus,
		glob:   glob,
		input:  ti,
		screen: &screen{},
	}
	m.ctrl = prompt.NewController(prompt.NewConfig(q), lineEditor{m: m}, m.screen, m, bus)
	if styles != nil {
		m.ctrl.SetStyles(styles)
	}
	m.adapter = prompt.NewInputAdapter(bus, m.ctrl)
	return m
}

// Run implements prompt.Runner by queueing the query as a command
func (m *Model) Run(q prompt.Query) {
	ctx, glob := m.ctx, m.glob
	m.pending = append(m.pending, func() tea.Msg {
		paths, err := glob(ctx, q.Pattern, q.Options)
		return queryResultMsg{result: prompt.Result{Token: q.Token, Paths: paths, Err: err}}
	})
}

// Init draws the prompt and starts the first query
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start()
	return m.flush()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width

	case tea.KeyMsg:
		if isAbort(msg) {
			log.Printf("[prompt %s] aborted", m.ctrl.ID())
			m.aborted = true
			m.adapter.Close()
			return m, tea.Quit
		}

		if isSubmit(msg) {
			m.bus.Publish(domain.LineEvent{Text: m.input.Value()})
		} else {
			// The editor applies the key before listeners see it
			m.input, _ = m.input.Update(msg)
			m.bus.Publish(domain.KeypressEvent{Key: keyFromMsg(msg)})
		}

	case queryResultMsg:
		m.ctrl.Resolve(msg.result)
	}

	if m.screen.done {
		return m, tea.Quit
	}
	return m, m.flush()
}

// View renders the UI
func (m *Model) View() string {
	if m.aborted {
		return ""
	}
	out := m.screen.view(m.width)
	if m.screen.done {
		return out + "\n"
	}
	return out
}

// Answer returns the selected paths once the prompt has been answered
func (m *Model) Answer() ([]string, bool) {
	return m.ctrl.Answer()
}

// Aborted reports whether the user cancelled the prompt
func (m *Model) Aborted() bool {
	return m.aborted
}

func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
