package events

import "time"

// Event codes published on the notes stream.
const (
	TypeNoteCreated = "NOTE_CREATED"
	TypeNoteDeleted = "NOTE_DELETED"
)

// Event is the contract for everything published to the event stream.
type Event interface {
	// EventType returns the code for this event (e.g., "NOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain Event carrier for the common case where no
// behavior beyond the three accessors is needed.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// NoteEvent builds a BaseEvent for a note lifecycle change, stamped
// with the current time.
func NoteEvent(eventType string, noteId, userId int64) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": noteId,
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
