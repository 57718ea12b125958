package navigation

import "time"

// State is the controller's coarse phase.
type State string

const (
	// StateIdle means the track is settled at the active index.
	StateIdle State = "idle"
	// StateTransitioning means an animated move is awaiting completion.
	StateTransitioning State = "transitioning"
)

// Positioner is what the controller needs from the rendering surface:
// instant repositioning plus a one-shot completion signal after an animated
// move. Animate must deliver done asynchronously on the same event loop the
// controller runs on; unanimated moves never touch it.
type Positioner interface {
	SetPosition(offset float64)
	Animate(d time.Duration, done func())
}
