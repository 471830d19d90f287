package events

import "time"

// ProtocolVersion is carried on every wire message
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// AllSprints scopes an event or subscription to the whole board
const AllSprints = 0

// Event is a board change notification
type Event struct {
	Type       EventType `json:"type"`
	SprintID   int       `json:"sprint_id"` // AllSprints, or the sprint whose tickets changed
	Entity     string    `json:"entity,omitempty"`
	EntityID   int       `json:"entity_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int64     `json:"sequence_id"` // Assigned by the daemon, monotonically increasing
}

// SubscribeMessage is sent by clients to narrow which events they receive
type SubscribeMessage struct {
	SprintID int `json:"sprint_id"` // AllSprints = everything
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version   int               `json:"version"`
	Type      string            `json:"type"` // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:"event,omitempty"`
	Subscribe *SubscribeMessage `json:"subscribe,omitempty"`
}

// Matches reports whether a subscriber scoped to sprintID should see e.
func (e Event) Matches(sprintID int) bool {
	return e.SprintID == AllSprints || sprintID == AllSprints || e.SprintID == sprintID
}

// BoardChanged builds an event for a mutation of entity/entityID that
// touched tickets of sprintID (AllSprints when unknown or several).
func BoardChanged(entity string, entityID, sprintID int) Event {
	return Event{
		Type:      EventBoardChanged,
		SprintID:  sprintID,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now(),
	}
}
