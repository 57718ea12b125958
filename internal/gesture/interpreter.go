// Package gesture turns recognized pan/swipe events into carousel actions:
// live drags with edge resistance, one-step commits, and snap-backs.
package gesture

import "math"

const (
	// Resistance dampens drag deltas past the sequence edges when looping
	// is off, producing the rubber-band feel.
	Resistance = 0.15
	// DefaultBoundary is the fraction of a frame a release must have
	// travelled to commit a step instead of snapping back.
	DefaultBoundary = 0.25
)

// Interpreter consumes one gesture sequence at a time. Once an event commits
// a step, the rest of the sequence is swallowed until the next pan-start, so
// a stale drag can never continue after a jump.
type Interpreter struct {
	boundary float64
	halted   bool
}

// NewInterpreter creates an interpreter with the given commit boundary.
// Out-of-range boundaries fall back to DefaultBoundary.
func NewInterpreter(boundary float64) *Interpreter {
	if boundary <= 0 || boundary > 1 {
		boundary = DefaultBoundary
	}
	return &Interpreter{boundary: boundary}
}

// Interpret decides what a single event means given the current navigation
// state. It only reports the decision; applying it is the caller's job.
func (in *Interpreter) Interpret(ev Event, st State) Action {
	if ev.PointerCancelled {
		return Action{Kind: ActionNone}
	}

	switch ev.Kind {
	case KindPanStart:
		in.halted = false
		return Action{Kind: ActionNone}

	case KindSwipe:
		if in.halted {
			return Action{Kind: ActionNone}
		}
		in.halted = true
		return Action{Kind: ActionStep, Direction: directionOf(ev.Delta)}

	case KindPanMove:
		return in.panMove(ev, st)

	case KindPanEnd, KindPanCancel:
		if in.halted {
			return Action{Kind: ActionNone}
		}
		in.halted = true
		if math.Abs(ev.Delta) > st.FrameSize*in.boundary {
			return Action{Kind: ActionStep, Direction: directionOf(ev.Delta)}
		}
		return Action{Kind: ActionSnapBack}
	}

	return Action{Kind: ActionNone}
}

func (in *Interpreter) panMove(ev Event, st State) Action {
	if in.halted || st.FrameSize <= 0 {
		return Action{Kind: ActionNone}
	}

	// Panning a full frame without lifting is as good as a commit.
	if math.Abs(ev.Delta) > st.FrameSize {
		in.halted = true
		return Action{Kind: ActionStep, Direction: directionOf(ev.Delta)}
	}

	framePos := -float64(st.ActiveIndex) * st.FrameSize
	delta := ev.Delta
	if !st.Loop {
		trackEnd := -float64(st.SequenceLen-1) * st.FrameSize
		prospective := framePos + delta
		if prospective >= 0 || prospective <= trackEnd {
			delta *= Resistance
		}
	}
	return Action{Kind: ActionDrag, Position: framePos + delta}
}

// directionOf maps a delta sign to a step direction: dragging toward
// positive exposes the previous frame.
func directionOf(delta float64) Direction {
	if delta > 0 {
		return DirectionBackward
	}
	return DirectionForward
}
