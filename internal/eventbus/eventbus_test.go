package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := New()

	var order []string
	bus.Subscribe(EventFrameChanged, func(DomainEvent) { order = append(order, "first") })
	bus.Subscribe(EventFrameChanged, func(DomainEvent) { order = append(order, "second") })

	bus.Publish(FrameChangedEvent{Index: 1})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishOnlyMatchingType(t *testing.T) {
	bus := New()

	var frames, drags int
	bus.Subscribe(EventFrameChanged, func(DomainEvent) { frames++ })
	bus.Subscribe(EventDragMoved, func(DomainEvent) { drags++ })

	bus.Publish(FrameChangedEvent{Index: 0})
	bus.Publish(DragMovedEvent{Position: -12.5})
	bus.Publish(DragMovedEvent{Position: -13})

	assert.Equal(t, 1, frames)
	assert.Equal(t, 2, drags)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	var calls int
	unsub := bus.Subscribe(EventLayoutUpdated, func(DomainEvent) { calls++ })

	bus.Publish(LayoutUpdatedEvent{FrameSize: 300, Frames: 5})
	unsub()
	bus.Publish(LayoutUpdatedEvent{FrameSize: 200, Frames: 5})

	assert.Equal(t, 1, calls)
}

func TestHandlerPanicIsContained(t *testing.T) {
	bus := New()

	var after int
	bus.Subscribe(EventFrameChanged, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventFrameChanged, func(DomainEvent) { after++ })

	assert.NotPanics(t, func() { bus.Publish(FrameChangedEvent{Index: 2}) })
	assert.Equal(t, 1, after, "later handlers still run after a panic")
}

func TestEventPayloads(t *testing.T) {
	bus := New()

	var got TransitionStartedEvent
	bus.Subscribe(EventTransitionStarted, func(e DomainEvent) {
		got = e.(TransitionStartedEvent)
	})

	bus.Publish(TransitionStartedEvent{From: 2, To: 3, Animated: true})
	assert.Equal(t, 2, got.From)
	assert.Equal(t, 3, got.To)
	assert.True(t, got.Animated)
}
