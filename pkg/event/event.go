// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
	VesselSpawned    Type = "vessel_spawned"
	VesselRemoved    Type = "vessel_removed"
	ManeuverAccepted Type = "maneuver_accepted"
	ManeuverRejected Type = "maneuver_rejected"
	VesselMoved      Type = "vessel_moved"
	WindChanged      Type = "wind_changed"
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

// SubscriptionID identifies a handler registration
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a handler registration. It reports whether one was found.
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers, synchronously and in
// subscription order
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// VesselEvent contains information about vessel-related events
type VesselEvent struct {
	BaseEvent
	VesselID entity.ID
	State    entity.VesselState
	Cost     uint8
	Err      error
}

// NewVesselEvent creates a new vessel event
func NewVesselEvent(eventType Type, source interface{}, state entity.VesselState, cost uint8) *VesselEvent {
	return &VesselEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		VesselID: state.ID,
		State:    state,
		Cost:     cost,
	}
}

// NewRejectionEvent creates a ManeuverRejected event carrying the reason
func NewRejectionEvent(source interface{}, state entity.VesselState, err error) *VesselEvent {
	e := NewVesselEvent(ManeuverRejected, source, state, 0)
	e.Err = err
	return e
}

// WindEvent is published when the wind shifts
type WindEvent struct {
	BaseEvent
	Previous physics.Direction
	Current  physics.Direction
}

// NewWindEvent creates a new wind event
func NewWindEvent(source interface{}, previous, current physics.Direction) *WindEvent {
	return &WindEvent{
		BaseEvent: BaseEvent{
			EventType: WindChanged,
			Source:    source,
		},
		Previous: previous,
		Current:  current,
	}
}
