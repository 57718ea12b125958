// Package carousel is a slider navigation core: it owns which frame is
// active, maps gesture deltas onto a scroll position with edge resistance,
// fakes infinite looping with clone padding and seam jumps, and sequences
// interruptible animated transitions. Rendering, gesture recognition and
// timing live behind the Surface and listener interfaces supplied by the
// host.
package carousel

import (
	"time"

	"carousel/internal/eventbus"
	"carousel/internal/gesture"
	"carousel/internal/layout"
	"carousel/internal/looppad"
	"carousel/internal/navigation"
	"carousel/internal/throttle"
)

// resizeInterval limits how often resize notifications reach Recalculate.
const resizeInterval = 100 * time.Millisecond

// Metrics re-exports the layout result for read access.
type Metrics = layout.Metrics

// Surface is the rendering/layout collaborator: it measures the viewport,
// lays the track out, repositions it, and signals animated-move completion.
// Animate must call done exactly once, later, on the carousel's event loop.
type Surface interface {
	ParentSize() float64
	SetTrackLayout(trackPercent, framePercent float64)
	SetPosition(offset float64)
	Animate(d time.Duration, done func())
}

// GestureSource delivers recognized gesture events while attached.
type GestureSource interface {
	Attach(handler func(GestureEvent))
	Detach()
}

// ResizeSource delivers viewport resize notifications while attached.
type ResizeSource interface {
	Attach(handler func())
	Detach()
}

// Carousel composes layout, loop padding, gesture interpretation and the
// navigation controller behind one entry point. Not goroutine-safe: all
// calls belong to one event loop.
type Carousel struct {
	opts    Options
	frames  int // real frame count
	surface Surface

	gestures GestureSource
	resizes  ResizeSource

	bus     eventbus.EventBus
	interp  *gesture.Interpreter
	nav     *navigation.Controller
	pad     looppad.Padding
	metrics layout.Metrics
	resize  *throttle.Throttle

	mounted         bool
	gestureAttached bool
}

// New creates a carousel over frames real frames rendered by surface.
// Nothing is measured or positioned until Mount.
func New(frames int, surface Surface, opts Options) *Carousel {
	opts.normalize(frames)

	bus := eventbus.New()
	c := &Carousel{
		opts:    opts,
		frames:  frames,
		surface: surface,
		bus:     bus,
		interp:  gesture.NewInterpreter(opts.FrameBoundary),
		nav:     navigation.NewController(bus, surface, opts.TransitionDuration),
		pad:     looppad.New(opts.ClonesCount, frames, opts.Loop),
	}
	c.nav.SetActive(c.pad.ToInternal(opts.StartFrame))
	return c
}

// SetGestureSource installs the gesture collaborator. Must precede Mount.
func (c *Carousel) SetGestureSource(src GestureSource) { c.gestures = src }

// SetResizeSource installs the resize collaborator. Must precede Mount.
func (c *Carousel) SetResizeSource(src ResizeSource) { c.resizes = src }

// OnFrameUpdate registers the host callback invoked with the public index
// once per settled transition, never during a live drag.
func (c *Carousel) OnFrameUpdate(fn func(publicIndex int)) {
	c.nav.SetOnFrameUpdate(fn)
}

// Bus exposes the carousel's event bus for finer-grained subscriptions.
func (c *Carousel) Bus() EventBus { return c.bus }

// Mount attaches listeners, runs the initial layout pass and settles at the
// start frame. Idempotent.
func (c *Carousel) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true

	if c.gestures != nil && (c.opts.Draggable || c.opts.Swipeable) {
		c.gestures.Attach(c.HandleGesture)
		c.gestureAttached = true
	}
	if c.resizes != nil {
		c.resize = throttle.New(resizeInterval, c.Recalculate)
		c.resizes.Attach(c.resize.Invoke)
	}

	c.layoutPass()
	c.nav.GoTo(c.nav.Active(), false)
}

// Unmount detaches listeners and invalidates any pending transition. No
// completion fires after teardown. Idempotent.
func (c *Carousel) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false

	if c.gestureAttached {
		c.gestures.Detach()
		c.gestureAttached = false
	}
	if c.resize != nil {
		c.resize.Stop()
		c.resizes.Detach()
		c.resize = nil
	}
	c.nav.Invalidate()
}

// Next advances one frame. At the forward bound the index clamps; in loop
// mode the clamp lands on a clone and the seam jump carries on from there,
// modular arithmetic is never involved.
func (c *Carousel) Next() { c.step(true) }

// Prev retreats one frame.
func (c *Carousel) Prev() { c.step(false) }

// GoTo navigates to a public frame index, animated. Out-of-range indices
// are silently ignored.
func (c *Carousel) GoTo(publicIndex int) {
	if !c.mounted || publicIndex < 0 || publicIndex >= c.frames {
		return
	}
	c.nav.GoTo(c.pad.ToInternal(publicIndex), true)
}

// Recalculate re-measures the viewport and re-settles at the current active
// index without animation. Preempts an in-flight animated move; the public
// active index never changes from a resize alone. Safe to call arbitrarily
// often.
func (c *Carousel) Recalculate() {
	if !c.mounted {
		return
	}
	c.layoutPass()
	c.nav.GoTo(c.nav.Active(), false)
}

// Frame returns the current public index.
func (c *Carousel) Frame() int { return c.pad.ToPublic(c.nav.Active()) }

// FrameCount returns the number of real frames.
func (c *Carousel) FrameCount() int { return c.frames }

// LayoutMetrics returns the current layout metrics.
func (c *Carousel) LayoutMetrics() Metrics { return c.metrics }

// Surface returns the rendering surface handle, read-only by convention.
func (c *Carousel) Surface() Surface { return c.surface }

// ContentIndex maps any internal slot to the public index of the content it
// renders; clone slots map to the real frame they duplicate. Useful for
// hosts laying out the padded sequence.
func (c *Carousel) ContentIndex(internal int) int {
	if c.frames == 0 {
		return 0
	}
	p := c.pad.ToPublic(internal) % c.frames
	if p < 0 {
		p += c.frames
	}
	return p
}

// HandleGesture feeds one recognized gesture event through the interpreter
// and applies its decision. Gesture sources call this while attached; hosts
// without a source may call it directly between Mount and Unmount.
func (c *Carousel) HandleGesture(ev GestureEvent) {
	if !c.mounted {
		return
	}
	switch ev.Kind {
	case gesture.KindPanStart:
		// Sequence bookkeeping, not a drag: always let it reset the
		// interpreter so swipe-only hosts start each sequence clean.
	case gesture.KindSwipe:
		if !c.opts.Swipeable {
			return
		}
	default:
		if !c.opts.Draggable {
			return
		}
	}

	act := c.interp.Interpret(ev, gesture.State{
		ActiveIndex: c.nav.Active(),
		FrameSize:   c.metrics.FrameSize,
		SequenceLen: c.metrics.Frames,
		Loop:        c.opts.Loop,
	})

	switch act.Kind {
	case gesture.ActionDrag:
		c.surface.SetPosition(act.Position)
		c.bus.Publish(eventbus.DragMovedEvent{Position: act.Position})
	case gesture.ActionStep:
		c.step(act.Direction == gesture.DirectionForward)
	case gesture.ActionSnapBack:
		c.nav.GoTo(c.nav.Active(), true)
	}
}

func (c *Carousel) step(forward bool) {
	if !c.mounted {
		return
	}
	c.nav.GoTo(c.nextIndex(forward), true)
}

// nextIndex clamps to the padded sequence bounds in both modes.
func (c *Carousel) nextIndex(forward bool) int {
	i := c.nav.Active()
	if forward {
		i++
	} else {
		i--
	}
	if i < 0 {
		i = 0
	}
	if max := c.metrics.Frames - 1; i > max {
		i = max
	}
	return i
}

func (c *Carousel) layoutPass() {
	c.pad = looppad.New(c.opts.ClonesCount, c.frames, c.opts.Loop)
	c.metrics = layout.Measure(c.surface.ParentSize(), c.frames, c.pad.EffectiveClones())
	c.surface.SetTrackLayout(c.metrics.TrackPercent, c.metrics.FramePercent)
	c.nav.Configure(c.pad, c.metrics)
	c.bus.Publish(eventbus.LayoutUpdatedEvent{FrameSize: c.metrics.FrameSize, Frames: c.metrics.Frames})
}
