package gesture

// Kind identifies a recognized gesture event. Recognition itself happens
// upstream; this package only consumes the named events.
type Kind string

const (
	KindPanStart  Kind = "pan-start"
	KindPanMove   Kind = "pan-move"
	KindPanEnd    Kind = "pan-end"
	KindPanCancel Kind = "pan-cancel"
	KindSwipe     Kind = "swipe"
)

// Event is one recognized gesture event. Delta is the signed travel along
// the active axis accumulated since pan-start. PointerCancelled marks a
// device-level sub-event cancellation, which is ignored wholesale.
type Event struct {
	Kind             Kind
	Delta            float64
	PointerCancelled bool
}

// Direction represents a one-step move
type Direction string

const (
	DirectionForward  Direction = "forward"  // toward the next frame
	DirectionBackward Direction = "backward" // toward the previous frame
)

// ActionKind classifies the interpreter's decision for one event.
type ActionKind int

const (
	// ActionNone means the event carries no consequence.
	ActionNone ActionKind = iota
	// ActionDrag repositions the track live without committing an index.
	ActionDrag
	// ActionStep commits a one-frame move in Direction.
	ActionStep
	// ActionSnapBack animates back to the current active index.
	ActionSnapBack
)

// Action is the interpreter's decision for one event.
type Action struct {
	Kind      ActionKind
	Position  float64   // track offset, for ActionDrag
	Direction Direction // for ActionStep
}

// State is the navigation state the interpreter reads. It never mutates it;
// committing is the caller's job.
type State struct {
	ActiveIndex int     // settled internal index
	FrameSize   float64 // one frame along the active axis
	SequenceLen int     // padded sequence length
	Loop        bool
}
