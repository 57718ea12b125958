package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"carousel/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventTransitionStarted = domain.EventTransitionStarted
	EventFrameChanged      = domain.EventFrameChanged
	EventDragMoved         = domain.EventDragMoved
	EventLayoutUpdated     = domain.EventLayoutUpdated
)

// Re-export domain event types
type TransitionStartedEvent = domain.TransitionStartedEvent
type FrameChangedEvent = domain.FrameChangedEvent
type DragMovedEvent = domain.DragMovedEvent
type LayoutUpdatedEvent = domain.LayoutUpdatedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus.
//
// Dispatch is synchronous and in subscription order: the carousel runs on a
// single logical event loop and settle notifications must not overtake the
// gesture handling that caused them.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventDragMoved:
		// Don't log drag positions, they arrive per pointer move
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	// Make a copy to avoid holding the lock during handler execution
	handlersCopy := make([]EventHandler, len(handlers))
	copy(handlersCopy, handlers)
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		if handler == nil {
			continue // unsubscribed
		}
		b.call(handler, event)
	}
}

func (b *bus) call(handler EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	idx := len(b.handlers[eventType]) - 1

	// Zero out rather than reslice so other unsubscribe closures keep
	// their indices valid
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType][idx] = nil
	}
}
