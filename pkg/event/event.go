// pkg/event/event.go
package event

import (
	"sync"
	"time"
)

// Type represents the type of event
type Type string

// Common event types
const (
	CollisionDetected Type = "collision_detected"
	ExplosionStarted  Type = "explosion_started"
	ExplosionEnded    Type = "explosion_ended"
	TrackingAcquired  Type = "tracking_acquired"
	TrackingLost      Type = "tracking_lost"
	SceneReset        Type = "scene_reset"
	DemoStarted       Type = "demo_started"
	DemoStopped       Type = "demo_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// CollisionEvent carries the details of a ship/asteroid collision.
type CollisionEvent struct {
	BaseEvent
	AsteroidIndex  int
	CollisionCount int
	SurvivalTime   time.Duration
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, asteroidIndex, collisionCount int, survivalTime time.Duration) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: CollisionDetected,
			Source:    source,
		},
		AsteroidIndex:  asteroidIndex,
		CollisionCount: collisionCount,
		SurvivalTime:   survivalTime,
	}
}

// TrackingEvent reports a change in gesture-tracking presence.
type TrackingEvent struct {
	BaseEvent
	Tracked bool
}

// NewTrackingEvent creates a new tracking event
func NewTrackingEvent(source interface{}, tracked bool) *TrackingEvent {
	eventType := TrackingLost
	if tracked {
		eventType = TrackingAcquired
	}
	return &TrackingEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tracked: tracked,
	}
}
