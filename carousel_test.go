package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface measures a fixed viewport, records applied offsets and holds
// animated completions until the test releases them.
type fakeSurface struct {
	size         float64
	positions    []float64
	trackPercent float64
	framePercent float64
	pending      []func()
}

func (f *fakeSurface) ParentSize() float64 { return f.size }

func (f *fakeSurface) SetTrackLayout(trackPercent, framePercent float64) {
	f.trackPercent = trackPercent
	f.framePercent = framePercent
}

func (f *fakeSurface) SetPosition(offset float64) { f.positions = append(f.positions, offset) }

func (f *fakeSurface) Animate(d time.Duration, done func()) { f.pending = append(f.pending, done) }

func (f *fakeSurface) complete(i int) {
	done := f.pending[i]
	f.pending[i] = nil
	done()
}

func (f *fakeSurface) completeAll() {
	for i, done := range f.pending {
		if done != nil {
			f.pending[i] = nil
			done()
		}
	}
}

func (f *fakeSurface) lastPosition() float64 { return f.positions[len(f.positions)-1] }

type fakeGestures struct {
	handler func(GestureEvent)
}

func (g *fakeGestures) Attach(handler func(GestureEvent)) { g.handler = handler }
func (g *fakeGestures) Detach()                           { g.handler = nil }

type fakeResizes struct {
	handler func()
}

func (r *fakeResizes) Attach(handler func()) { r.handler = handler }
func (r *fakeResizes) Detach()               { r.handler = nil }

func newMounted(t *testing.T, frames int, opts Options) (*Carousel, *fakeSurface, *[]int) {
	t.Helper()
	surface := &fakeSurface{size: 300}
	c := New(frames, surface, opts)

	var settles []int
	c.OnFrameUpdate(func(publicIndex int) { settles = append(settles, publicIndex) })
	c.Mount()
	return c, surface, &settles
}

func TestMountSettlesAtStartFrame(t *testing.T) {
	c, surface, settles := newMounted(t, 3, DefaultOptions())

	assert.Equal(t, 0, c.Frame())
	assert.Equal(t, 0.0, surface.lastPosition())
	assert.Equal(t, []int{0}, *settles)
	assert.Equal(t, 300.0, surface.trackPercent)
	assert.InDelta(t, 33.333, surface.framePercent, 0.001)
}

func TestMountLoopCompensatesStartFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.Loop = true
	opts.StartFrame = 1
	c, surface, _ := newMounted(t, 3, opts)

	// internal = public 1 + 2 clones
	assert.Equal(t, 1, c.Frame())
	assert.Equal(t, -900.0, surface.lastPosition())
	assert.Equal(t, 700.0, surface.trackPercent)
}

func TestStartFrameClamped(t *testing.T) {
	opts := DefaultOptions()
	opts.StartFrame = 9
	c, _, _ := newMounted(t, 3, opts)
	assert.Equal(t, 2, c.Frame())
}

func TestNextStopsAtLastFrameWithoutLoop(t *testing.T) {
	c, surface, _ := newMounted(t, 3, DefaultOptions())

	for i := 0; i < 5; i++ {
		c.Next()
		surface.completeAll()
	}
	assert.Equal(t, 2, c.Frame(), "must never advance past the last frame")

	for i := 0; i < 5; i++ {
		c.Prev()
		surface.completeAll()
	}
	assert.Equal(t, 0, c.Frame(), "must never retreat past the first frame")
}

func TestLoopSeamJumpForward(t *testing.T) {
	opts := DefaultOptions()
	opts.Loop = true
	c, surface, settles := newMounted(t, 3, opts)

	// Walk forward across the seam: 0 -> 1 -> 2 -> 0
	for _, want := range []int{1, 2, 0} {
		c.Next()
		surface.completeAll()
		assert.Equal(t, want, c.Frame())
	}
	assert.Equal(t, []int{0, 1, 2, 0}, *settles)
	// After the seam jump the track rests on the first real frame
	assert.Equal(t, -600.0, surface.lastPosition())
}

func TestLoopSeamJumpBackward(t *testing.T) {
	opts := DefaultOptions()
	opts.Loop = true
	c, surface, _ := newMounted(t, 3, opts)

	c.Prev()
	surface.completeAll()

	assert.Equal(t, 2, c.Frame())
	assert.Equal(t, -1200.0, surface.lastPosition())
}

func TestGoToSupersedesPendingTransition(t *testing.T) {
	c, surface, settles := newMounted(t, 4, DefaultOptions())
	*settles = nil

	c.GoTo(2)
	c.GoTo(1)

	// Stale completion first; it must not settle or notify
	surface.complete(0)
	assert.Equal(t, 0, c.Frame())
	assert.Empty(t, *settles)

	surface.complete(1)
	assert.Equal(t, 1, c.Frame())
	assert.Equal(t, []int{1}, *settles)
}

func TestGoToInvalidIndexIgnored(t *testing.T) {
	c, surface, settles := newMounted(t, 3, DefaultOptions())
	before := len(surface.positions)

	c.GoTo(-1)
	c.GoTo(3)

	assert.Equal(t, before, len(surface.positions))
	assert.Equal(t, []int{0}, *settles)
}

func TestRecalculatePreservesActiveIndex(t *testing.T) {
	opts := DefaultOptions()
	opts.Loop = true
	c, surface, _ := newMounted(t, 3, opts)

	c.Next()
	surface.completeAll()
	require.Equal(t, 1, c.Frame())

	surface.size = 500
	c.Recalculate()

	assert.Equal(t, 1, c.Frame())
	assert.Equal(t, 500.0, c.LayoutMetrics().FrameSize)
	// Re-settled at the same internal index with the new frame size
	assert.Equal(t, -1500.0, surface.lastPosition())
}

func TestRecalculatePreemptsInFlightMove(t *testing.T) {
	c, surface, settles := newMounted(t, 4, DefaultOptions())
	*settles = nil

	c.GoTo(3)
	c.Recalculate()

	// The preempted completion is stale
	surface.complete(0)
	assert.Equal(t, 0, c.Frame())
	assert.Equal(t, []int{0}, *settles, "only the recalculate settle notifies")
}

func TestResizeListenerTriggersRecalculate(t *testing.T) {
	surface := &fakeSurface{size: 300}
	resizes := &fakeResizes{}
	c := New(3, surface, DefaultOptions())
	c.SetResizeSource(resizes)
	c.Mount()
	require.NotNil(t, resizes.handler)

	surface.size = 420
	resizes.handler()
	assert.Equal(t, 420.0, c.LayoutMetrics().FrameSize)
}

func TestUnmountDetachesAndSuppressesCompletions(t *testing.T) {
	surface := &fakeSurface{size: 300}
	gestures := &fakeGestures{}
	resizes := &fakeResizes{}

	opts := DefaultOptions()
	opts.Draggable = true
	c := New(3, surface, opts)
	c.SetGestureSource(gestures)
	c.SetResizeSource(resizes)

	var settles []int
	c.OnFrameUpdate(func(publicIndex int) { settles = append(settles, publicIndex) })

	c.Mount()
	require.NotNil(t, gestures.handler)
	require.NotNil(t, resizes.handler)

	c.GoTo(2)
	c.Unmount()

	assert.Nil(t, gestures.handler)
	assert.Nil(t, resizes.handler)

	// Completion arriving after teardown must not settle or notify
	surface.complete(0)
	assert.Equal(t, 0, c.Frame())
	assert.Equal(t, []int{0}, settles)

	// Navigation after teardown is a no-op
	before := len(surface.positions)
	c.Next()
	c.GoTo(1)
	c.Recalculate()
	assert.Equal(t, before, len(surface.positions))
}

func TestZeroFramesEverythingNoOps(t *testing.T) {
	c, surface, settles := newMounted(t, 0, DefaultOptions())

	c.Next()
	c.Prev()
	c.GoTo(0)
	c.Recalculate()

	assert.Equal(t, 0, c.Frame())
	assert.Empty(t, surface.positions)
	assert.Empty(t, *settles)
	assert.Same(t, surface, c.Surface())
}

func TestDragAppliesDampenedPositionWithoutSettling(t *testing.T) {
	opts := DefaultOptions()
	opts.Draggable = true
	c, surface, settles := newMounted(t, 3, opts)
	*settles = nil

	c.HandleGesture(GestureEvent{Kind: PanStart})
	c.HandleGesture(GestureEvent{Kind: PanMove, Delta: 100})

	// At the first frame without looping, forward travel is dampened
	assert.InDelta(t, 15.0, surface.lastPosition(), 1e-9)
	assert.Empty(t, *settles, "live drags never notify")
	assert.Equal(t, 0, c.Frame())
}

func TestDragReleaseCommitsPastBoundary(t *testing.T) {
	opts := DefaultOptions()
	opts.Draggable = true
	c, surface, settles := newMounted(t, 3, opts)
	*settles = nil

	c.HandleGesture(GestureEvent{Kind: PanStart})
	c.HandleGesture(GestureEvent{Kind: PanMove, Delta: -76})
	c.HandleGesture(GestureEvent{Kind: PanEnd, Delta: -76})
	surface.completeAll()

	assert.Equal(t, 1, c.Frame())
	assert.Equal(t, []int{1}, *settles)
}

func TestDragReleaseSnapsBackUnderBoundary(t *testing.T) {
	opts := DefaultOptions()
	opts.Draggable = true
	c, surface, settles := newMounted(t, 3, opts)
	*settles = nil

	c.HandleGesture(GestureEvent{Kind: PanStart})
	c.HandleGesture(GestureEvent{Kind: PanMove, Delta: -74})
	c.HandleGesture(GestureEvent{Kind: PanEnd, Delta: -74})
	surface.completeAll()

	assert.Equal(t, 0, c.Frame())
	assert.Equal(t, 0.0, surface.lastPosition(), "snap-back returns to rest")
	assert.Equal(t, []int{0}, *settles)
}

func TestSwipeCommitsOneStep(t *testing.T) {
	opts := DefaultOptions()
	opts.Swipeable = true
	c, surface, _ := newMounted(t, 3, opts)

	c.HandleGesture(GestureEvent{Kind: Swipe, Delta: -40})
	surface.completeAll()
	assert.Equal(t, 1, c.Frame())

	c.HandleGesture(GestureEvent{Kind: PanStart})
	c.HandleGesture(GestureEvent{Kind: Swipe, Delta: 40})
	surface.completeAll()
	assert.Equal(t, 0, c.Frame())
}

func TestGestureKindsGatedByOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Swipeable = true // draggable off
	c, surface, _ := newMounted(t, 3, opts)
	before := len(surface.positions)

	c.HandleGesture(GestureEvent{Kind: PanStart})
	c.HandleGesture(GestureEvent{Kind: PanMove, Delta: -200})
	assert.Equal(t, before, len(surface.positions), "pan ignored when not draggable")

	opts = DefaultOptions()
	opts.Draggable = true // swipeable off
	c, surface, _ = newMounted(t, 3, opts)

	c.HandleGesture(GestureEvent{Kind: Swipe, Delta: -40})
	surface.completeAll()
	assert.Equal(t, 0, c.Frame(), "swipe ignored when not swipeable")
}

func TestContentIndexMapsClonesToRealFrames(t *testing.T) {
	opts := DefaultOptions()
	opts.Loop = true
	c, _, _ := newMounted(t, 3, opts)

	// prefix clones duplicate the tail, suffix clones the head
	assert.Equal(t, 1, c.ContentIndex(0))
	assert.Equal(t, 2, c.ContentIndex(1))
	assert.Equal(t, 0, c.ContentIndex(2))
	assert.Equal(t, 1, c.ContentIndex(3))
	assert.Equal(t, 2, c.ContentIndex(4))
	assert.Equal(t, 0, c.ContentIndex(5))
	assert.Equal(t, 1, c.ContentIndex(6))
}

func TestBusCarriesDragAndLayoutEvents(t *testing.T) {
	opts := DefaultOptions()
	opts.Draggable = true
	surface := &fakeSurface{size: 300}
	c := New(3, surface, opts)

	var drags []float64
	var layouts int
	c.Bus().Subscribe(EventDragMoved, func(e Event) {
		drags = append(drags, e.(DragMovedEvent).Position)
	})
	c.Bus().Subscribe(EventLayoutUpdated, func(e Event) { layouts++ })

	c.Mount()
	c.HandleGesture(GestureEvent{Kind: PanStart})
	c.HandleGesture(GestureEvent{Kind: PanMove, Delta: -50})

	assert.Equal(t, 1, layouts)
	require.Len(t, drags, 1)
	assert.Equal(t, -50.0, drags[0])
}
