package prompt

import (
	"log"
	"sync"

	"globprompt/internal/domain"
	"globprompt/internal/eventbus"
)

// InputAdapter routes line editor events from the bus to a controller.
// It detaches from both feeds the moment the controller is answered.
type InputAdapter struct {
	c      *Controller
	mu     sync.Mutex
	closed bool
	unsubs []func()
}

// NewInputAdapter subscribes c to the line and keypress feeds of bus
func NewInputAdapter(bus eventbus.EventBus, c *Controller) *InputAdapter {
	a := &InputAdapter{c: c}
	a.unsubs = []func(){
		bus.Subscribe(eventbus.EventLine, a.handleLine),
		bus.Subscribe(eventbus.EventKeypress, a.handleKeypress),
	}
	return a
}

func (a *InputAdapter) handleLine(event eventbus.DomainEvent) {
	e, ok := event.(domain.LineEvent)
	if !ok || !a.active() {
		return
	}
	a.c.HandleSubmit(e.Text)
	a.closeIfAnswered()
}

func (a *InputAdapter) handleKeypress(event eventbus.DomainEvent) {
	e, ok := event.(domain.KeypressEvent)
	if !ok || !a.active() {
		return
	}
	a.c.HandleKeypress(e.Key)
	a.closeIfAnswered()
}

func (a *InputAdapter) active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.closed && a.c.Status() == StatusPending
}

func (a *InputAdapter) closeIfAnswered() {
	if a.c.Status() == StatusAnswered {
		a.Close()
	}
}

// Close unsubscribes from both feeds. Safe to call more than once.
func (a *InputAdapter) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	unsubs := a.unsubs
	a.unsubs = nil
	a.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	log.Printf("[prompt %s] input detached", a.c.ID())
}
