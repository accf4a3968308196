package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"booklike/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventNavigationSettled = domain.EventNavigationSettled
	EventEdgeReached       = domain.EventEdgeReached
	EventThemeChanged      = domain.EventThemeChanged
	EventPageShown         = domain.EventPageShown
	EventPageHidden        = domain.EventPageHidden
	EventError             = domain.EventError
)

// Re-export domain event types
type NavigationSettledEvent = domain.NavigationSettledEvent
type EdgeReachedEvent = domain.EdgeReachedEvent
type ThemeChangedEvent = domain.ThemeChangedEvent
type PageShownEvent = domain.PageShownEvent
type PageHiddenEvent = domain.PageHiddenEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// queueSize is the dispatcher backlog
const queueSize = 256

// New creates a new event bus
func New() EventBus {
	return newBus(queueSize)
}

func newBus(size int) *bus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, size),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. With a full backlog,
// page visibility events are dropped and every other event waits for room.
func (b *bus) Publish(event DomainEvent) {
	chatty := false
	switch event.Type() {
	case EventPageShown, EventPageHidden:
		chatty = true
	default:
		slog.Debug("eventbus: publishing", "event", event.Type())
	}

	select {
	case b.eventChan <- event:
		return
	default:
	}
	if chatty {
		slog.Warn("eventbus: channel full, dropping event", "event", event.Type())
		return
	}
	select {
	case b.eventChan <- event:
	case <-b.quit:
		slog.Warn("eventbus: closed, dropping event", "event", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for it to exit.
// Events still queued are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch delivers events in publish order; handlers run on the dispatcher goroutine
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.call(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("eventbus: handler panic", "event", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}
