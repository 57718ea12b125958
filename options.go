package carousel

import (
	"time"

	"carousel/internal/gesture"
)

// Options configures a Carousel. Start from DefaultOptions and override;
// the zero value is usable but has dragging, swiping and looping off.
type Options struct {
	// StartFrame is the public index shown first. Clamped to the valid
	// range.
	StartFrame int
	// FrameBoundary is the fraction of a frame a drag must travel on
	// release to commit a step. Out-of-range values fall back to the
	// default.
	FrameBoundary float64
	// Loop enables clone-padded infinite looping.
	Loop bool
	// ClonesCount is the configured clones per edge in loop mode. The
	// effective count never exceeds the real frame count.
	ClonesCount int
	// Draggable enables live pan handling.
	Draggable bool
	// Swipeable enables discrete swipe commits.
	Swipeable bool
	// Vertical selects the active axis. The core itself is axis-agnostic;
	// surfaces read this at construction.
	Vertical bool
	// TransitionDuration is the animated move duration hint passed to the
	// surface.
	TransitionDuration time.Duration
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		FrameBoundary:      gesture.DefaultBoundary,
		ClonesCount:        2,
		TransitionDuration: 300 * time.Millisecond,
	}
}

// normalize repairs invalid option values in place.
func (o *Options) normalize(realFrames int) {
	if o.StartFrame < 0 {
		o.StartFrame = 0
	}
	if realFrames > 0 && o.StartFrame > realFrames-1 {
		o.StartFrame = realFrames - 1
	}
	if o.FrameBoundary <= 0 || o.FrameBoundary > 1 {
		o.FrameBoundary = gesture.DefaultBoundary
	}
	if o.ClonesCount < 0 {
		o.ClonesCount = 0
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
}
