package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeCreated    EventType = "created"
	EventTypeUpdated    EventType = "updated"
	EventTypeCalculated EventType = "calculated"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeProfile    EntityType = "profile"
	EntityTypeProjection EntityType = "projection"
	EntityTypeExport     EntityType = "export"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "projection.calculated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "projection"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ProfileUpdated creates a profile.updated event
func ProfileUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeProfile, payload)
}

// ProjectionCalculated creates a projection.calculated event
func ProjectionCalculated(payload interface{}) Event {
	return NewEvent(EventTypeCalculated, EntityTypeProjection, payload)
}

// ExportCreated creates an export.created event
func ExportCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExport, payload)
}
