// Package navigation owns the active internal index and sequences animated
// transitions, including the seam jumps that make clone-based looping
// invisible.
package navigation

import (
	"time"

	"carousel/internal/eventbus"
	"carousel/internal/layout"
	"carousel/internal/looppad"
)

// Controller is the transition state machine. It is not goroutine-safe:
// the host delivers gestures, resizes and completions on one event loop.
type Controller struct {
	bus        eventbus.EventBus
	positioner Positioner
	duration   time.Duration

	pad     looppad.Padding
	metrics layout.Metrics

	active  int
	state   State
	token   uint64 // current transition; stale completions compare and bail
	onFrame func(publicIndex int)
}

// NewController creates a controller that moves the track through pos and
// animates over d.
func NewController(bus eventbus.EventBus, pos Positioner, d time.Duration) *Controller {
	return &Controller{
		bus:        bus,
		positioner: pos,
		duration:   d,
		state:      StateIdle,
	}
}

// Configure installs the result of a layout pass. Called on mount and on
// every recalculate; the active index is left alone.
func (c *Controller) Configure(pad looppad.Padding, m layout.Metrics) {
	c.pad = pad
	c.metrics = m
}

// SetActive seeds the active internal index at construction time, before
// any transition has run.
func (c *Controller) SetActive(internal int) { c.active = internal }

// Active returns the settled internal index. Live drags never change it.
func (c *Controller) Active() int { return c.active }

// State returns the controller's current phase.
func (c *Controller) State() State { return c.state }

// SetOnFrameUpdate registers the host callback invoked once per settled
// transition with the public index.
func (c *Controller) SetOnFrameUpdate(fn func(publicIndex int)) { c.onFrame = fn }

// GoTo positions the track at the target internal index. Invalid targets
// are silently ignored. A call while a previous animated move is pending
// supersedes it: the stale completion becomes a no-op and only this move
// settles.
func (c *Controller) GoTo(target int, animate bool) {
	if c.metrics.Frames == 0 || target < 0 || target >= c.metrics.Frames {
		return
	}

	c.token++
	tok := c.token
	c.positioner.SetPosition(c.metrics.OffsetFor(target))
	c.bus.Publish(eventbus.TransitionStartedEvent{From: c.active, To: target, Animated: animate})

	if animate {
		c.state = StateTransitioning
		c.positioner.Animate(c.duration, func() { c.complete(tok, target) })
		return
	}
	c.complete(tok, target)
}

// Invalidate discards any pending completion, e.g. on teardown. The next
// GoTo starts clean.
func (c *Controller) Invalidate() {
	c.token++
	c.state = StateIdle
}

func (c *Controller) complete(tok uint64, target int) {
	if tok != c.token {
		return // superseded
	}

	if c.pad.IsClone(target) {
		// Landed on a clone: snap to the real frame with identical
		// content. Forward crossings enter the suffix, so the match is
		// the first real frame; backward crossings mirror to the last.
		forward := c.active <= target
		if forward {
			c.GoTo(c.pad.First(), false)
		} else {
			c.GoTo(c.pad.Last(), false)
		}
		return
	}

	c.active = target
	c.state = StateIdle
	public := c.pad.ToPublic(target)
	c.bus.Publish(eventbus.FrameChangedEvent{Index: public})
	if c.onFrame != nil {
		c.onFrame(public)
	}
}
