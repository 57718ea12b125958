package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTransitionStarted EventType = "TransitionStarted"
	EventFrameChanged      EventType = "FrameChanged"
	EventDragMoved         EventType = "DragMoved"
	EventLayoutUpdated     EventType = "LayoutUpdated"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TransitionStartedEvent is emitted when the track starts moving toward a
// new internal index, animated or not
type TransitionStartedEvent struct {
	From     int // internal index the move starts from
	To       int // internal index the move targets
	Animated bool
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// FrameChangedEvent is emitted when a transition settles on a real frame.
// Index is the public index, never a clone position.
type FrameChangedEvent struct {
	Index int
}

func (e FrameChangedEvent) Type() EventType { return EventFrameChanged }

// DragMovedEvent is emitted for every live drag reposition. High frequency;
// subscribers should be cheap.
type DragMovedEvent struct {
	Position float64
}

func (e DragMovedEvent) Type() EventType { return EventDragMoved }

// LayoutUpdatedEvent is emitted after a layout pass (mount, resize,
// explicit recalculate)
type LayoutUpdatedEvent struct {
	FrameSize float64
	Frames    int // padded sequence length
}

func (e LayoutUpdatedEvent) Type() EventType { return EventLayoutUpdated }
