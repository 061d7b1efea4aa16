package entity

import (
	"time"

	"semantic-notes-be/pkg/field"
)

// Note is the logical note aggregate: one note.content row plus its
// note.embedding and note.permission children, joined by note id.
// Every attribute carries the Unset / Null / Set distinction so the
// same type can describe inserts, partial updates and filters.
type Note struct {
	Id          field.Value[int64]
	Title       field.Value[string]
	Content     field.Value[string]
	AuthorId    field.Value[int64]
	UpdatedAt   field.Value[time.Time]
	Embeddings  field.Value[[]NoteEmbedding]
	Permissions field.Value[[]NotePermission]
}

// NoteEmbedding is one note.embedding row. A note has at most one row
// per model; (note_id, model) is the composite identity.
type NoteEmbedding struct {
	NoteId    int64
	Model     field.Value[string]
	Embedding field.Value[[]float32]
}

// NotePermission is one note.permission row, identified by
// (note_id, role_id).
type NotePermission struct {
	NoteId int64
	RoleId field.Value[int64]
}
