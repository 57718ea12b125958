package carousel

import (
	"carousel/internal/eventbus"
	"carousel/internal/gesture"
)

// Re-export the event surface so hosts never import internal packages.

// Gesture event types, consumed by HandleGesture.
type GestureEvent = gesture.Event
type GestureKind = gesture.Kind

const (
	PanStart  = gesture.KindPanStart
	PanMove   = gesture.KindPanMove
	PanEnd    = gesture.KindPanEnd
	PanCancel = gesture.KindPanCancel
	Swipe     = gesture.KindSwipe
)

// Bus types, for hosts subscribing beyond the OnFrameUpdate callback.
type EventBus = eventbus.EventBus
type Event = eventbus.DomainEvent
type EventType = eventbus.EventType

const (
	EventTransitionStarted = eventbus.EventTransitionStarted
	EventFrameChanged      = eventbus.EventFrameChanged
	EventDragMoved         = eventbus.EventDragMoved
	EventLayoutUpdated     = eventbus.EventLayoutUpdated
)

type TransitionStartedEvent = eventbus.TransitionStartedEvent
type FrameChangedEvent = eventbus.FrameChangedEvent
type DragMovedEvent = eventbus.DragMovedEvent
type LayoutUpdatedEvent = eventbus.LayoutUpdatedEvent
