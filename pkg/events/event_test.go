package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoteEvent(t *testing.T) {
	before := time.Now()
	evt := NoteEvent(TypeNoteCreated, 7, 42)

	assert.Equal(t, "NOTE_CREATED", evt.EventType())
	assert.Equal(t, int64(7), evt.Payload()["note_id"])
	assert.Equal(t, int64(42), evt.Payload()["user_id"])
	assert.False(t, evt.Timestamp().Before(before))
}
