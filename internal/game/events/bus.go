package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// funcSubscriber adapts an EventHandler bound to one event type.
type funcSubscriber struct {
	id        string
	eventType string
	handler   EventHandler
}

func (fs *funcSubscriber) ID() string                         { return fs.id }
func (fs *funcSubscriber) HandleEvent(e Event)                { fs.handler(e) }
func (fs *funcSubscriber) InterestedIn(eventType string) bool { return eventType == fs.eventType }

// EventBus delivers events synchronously, in subscription order.
// Handlers run outside the bus lock, so they may subscribe or publish.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	nextFuncID  int
	logger      zerolog.Logger
}

var _ Bus = (*EventBus)(nil)

// NewEventBus creates an empty bus logging through the global logger.
func NewEventBus() *EventBus {
	return NewEventBusWithLogger(log.Logger)
}

// NewEventBusWithLogger creates an empty bus that logs to logger.
func NewEventBusWithLogger(logger zerolog.Logger) *EventBus {
	return &EventBus{
		logger: logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber. A subscriber with the same ID is replaced in place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.add(subscriber)
	eb.logger.Debug().
		Str("subscriber_id", subscriber.ID()).
		Msg("Subscriber added to event bus")
}

// SubscribeFunc registers handler for a single event type and returns an ID
// that Unsubscribe accepts.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextFuncID++
	fs := &funcSubscriber{
		id:        fmt.Sprintf("%s_func_%d", eventType, eb.nextFuncID),
		eventType: eventType,
		handler:   handler,
	}
	eb.add(fs)

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", fs.id).
		Msg("Function handler added to event bus")
	return fs.id
}

// Unsubscribe removes a subscriber or function handler by ID.
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, s := range eb.subscribers {
		if s.ID() == id {
			eb.subscribers = append(eb.subscribers[:i:i], eb.subscribers[i+1:]...)
			eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed from event bus")
			return
		}
	}
}

func (eb *EventBus) add(s Subscriber) {
	for i, existing := range eb.subscribers {
		if existing.ID() == s.ID() {
			eb.subscribers[i] = s
			return
		}
	}
	eb.subscribers = append(eb.subscribers, s)
}

// Publish hands event to every interested subscriber. A panicking subscriber
// is logged and skipped.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	targets := make([]Subscriber, 0, len(eb.subscribers))
	for _, s := range eb.subscribers {
		if s.InterestedIn(event.Type()) {
			targets = append(targets, s)
		}
	}
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Int("targets", len(targets)).
		Msg("Publishing event")

	for _, s := range targets {
		eb.deliver(s, event)
	}
}

func (eb *EventBus) deliver(s Subscriber, event Event) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("subscriber_id", s.ID()).
				Str("event_type", event.Type()).
				Interface("panic", r).
				Msg("Subscriber panicked while handling event")
		}
	}()
	s.HandleEvent(event)
}

// SubscriberCount returns the number of registered subscribers, function
// handlers included.
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// HandlerCount returns how many subscribers want eventType.
func (eb *EventBus) HandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	n := 0
	for _, s := range eb.subscribers {
		if s.InterestedIn(eventType) {
			n++
		}
	}
	return n
}
