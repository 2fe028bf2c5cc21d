package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventKeypress       EventType = "Keypress"
	EventLine           EventType = "Line"
	EventQueryIssued    EventType = "QueryIssued"
	EventQueryResolved  EventType = "QueryResolved"
	EventQueryDiscarded EventType = "QueryDiscarded"
	EventAnswered       EventType = "Answered"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// KeypressEvent is emitted by the line editor after it has applied a key to its buffer
type KeypressEvent struct {
	Key Key
}

func (e KeypressEvent) Type() EventType { return EventKeypress }

// LineEvent is emitted when the user submits the line
type LineEvent struct {
	Text string
}

func (e LineEvent) Type() EventType { return EventLine }

// QueryIssuedEvent is emitted when a glob query is started
type QueryIssuedEvent struct {
	Session string
	Token   uint64
	Pattern string
}

func (e QueryIssuedEvent) Type() EventType { return EventQueryIssued }

// QueryResolvedEvent is emitted when the newest query's result is applied
type QueryResolvedEvent struct {
	Session string
	Token   uint64
	Pattern string
	Matches int
	Err     error
}

func (e QueryResolvedEvent) Type() EventType { return EventQueryResolved }

// QueryDiscardedEvent is emitted when a superseded query resolves
type QueryDiscardedEvent struct {
	Session string
	Token   uint64
	Pending uint64
}

func (e QueryDiscardedEvent) Type() EventType { return EventQueryDiscarded }

// AnsweredEvent is emitted once when the prompt accepts a submission
type AnsweredEvent struct {
	Session string
	Pattern string
	Paths   []string
}

func (e AnsweredEvent) Type() EventType { return EventAnswered }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
