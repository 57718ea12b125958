package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel"
)

// animTickMsg drives one pending animation. ID guards against ticks from a
// superseded animation arriving late.
type animTickMsg struct {
	ID int
}

// tickInterval is the redraw cadence while a transition animates.
const tickInterval = 33 * time.Millisecond

// animation is one in-flight animated move on the surface.
type animation struct {
	id       int
	from, to float64
	start    time.Time
	duration time.Duration
	done     func()
}

// TeaSurface adapts a bubbletea model to the carousel's collaborator
// interfaces: it measures the viewport, tracks the applied offset, eases
// animated moves across ticks, and forwards gestures and resizes.
type TeaSurface struct {
	vertical bool

	size     float64 // viewport along the active axis, in cells
	prev     float64 // offset before the latest SetPosition
	position float64 // applied track offset

	trackPercent float64
	framePercent float64

	anim    *animation
	nextID  int
	pending tea.Cmd // tick for a freshly started animation

	gestureHandler func(carousel.GestureEvent)
	resizeHandler  func()
}

// NewTeaSurface creates a surface for the given axis.
func NewTeaSurface(vertical bool) *TeaSurface {
	return &TeaSurface{vertical: vertical}
}

// SetSize records the measured viewport. Width and height are in cells.
func (s *TeaSurface) SetSize(width, height int) {
	if s.vertical {
		s.size = float64(height)
	} else {
		s.size = float64(width)
	}
}

// ParentSize implements carousel.Surface.
func (s *TeaSurface) ParentSize() float64 { return s.size }

// SetTrackLayout implements carousel.Surface.
func (s *TeaSurface) SetTrackLayout(trackPercent, framePercent float64) {
	s.trackPercent = trackPercent
	s.framePercent = framePercent
}

// SetPosition implements carousel.Surface.
func (s *TeaSurface) SetPosition(offset float64) {
	s.prev = s.position
	s.position = offset
	if s.anim != nil {
		// A new position while animating supersedes the visual move too.
		s.anim = nil
	}
}

// Animate implements carousel.Surface. The move eases from the offset that
// was applied before the matching SetPosition call.
func (s *TeaSurface) Animate(d time.Duration, done func()) {
	s.nextID++
	s.anim = &animation{
		id:       s.nextID,
		from:     s.prev,
		to:       s.position,
		start:    time.Now(),
		duration: d,
		done:     done,
	}
	id := s.anim.id
	s.pending = tea.Tick(tickInterval, func(time.Time) tea.Msg { return animTickMsg{ID: id} })
}

// TakeCmd returns the command for a freshly started animation, once.
func (s *TeaSurface) TakeCmd() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// Tick advances the current animation. It returns the next tick command, or
// nil when the animation completed (invoking its done callback) or when the
// tick belongs to a superseded animation.
func (s *TeaSurface) Tick(msg animTickMsg) tea.Cmd {
	a := s.anim
	if a == nil || a.id != msg.ID {
		return nil
	}
	if time.Since(a.start) >= a.duration {
		s.anim = nil
		a.done()
		// done may have started a follow-up animated move
		return s.TakeCmd()
	}
	id := a.id
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return animTickMsg{ID: id} })
}

// DisplayPosition returns the offset to render this frame: the eased
// in-between value while animating, the applied offset otherwise.
func (s *TeaSurface) DisplayPosition() float64 {
	a := s.anim
	if a == nil || a.duration <= 0 {
		return s.position
	}
	t := float64(time.Since(a.start)) / float64(a.duration)
	if t >= 1 {
		return a.to
	}
	return a.from + (a.to-a.from)*easeInOutCubic(t)
}

// Animating reports whether a visual move is in flight.
func (s *TeaSurface) Animating() bool { return s.anim != nil }

// Attach implements carousel.GestureSource.
func (s *TeaSurface) Attach(handler func(carousel.GestureEvent)) { s.gestureHandler = handler }

// Detach implements carousel.GestureSource.
func (s *TeaSurface) Detach() { s.gestureHandler = nil }

// AttachResize implements carousel.ResizeSource via resizeSource.
func (s *TeaSurface) AttachResize(handler func()) { s.resizeHandler = handler }

// DetachResize implements carousel.ResizeSource via resizeSource.
func (s *TeaSurface) DetachResize() { s.resizeHandler = nil }

// ResizeSource returns the surface's resize listener hookup. A separate
// value because Attach/Detach are already taken by the gesture side.
func (s *TeaSurface) ResizeSource() carousel.ResizeSource { return resizeSource{s} }

type resizeSource struct{ s *TeaSurface }

func (r resizeSource) Attach(handler func()) { r.s.AttachResize(handler) }
func (r resizeSource) Detach()               { r.s.DetachResize() }

// Gesture forwards one event to the attached handler, if any.
func (s *TeaSurface) Gesture(ev carousel.GestureEvent) {
	if s.gestureHandler != nil {
		s.gestureHandler(ev)
	}
}

// Resized notifies the attached resize handler, if any.
func (s *TeaSurface) Resized() {
	if s.resizeHandler != nil {
		s.resizeHandler()
	}
}

// easeInOutCubic is the demo's transition curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
