package mapper

import (
	"time"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/field"
)

// note.content column names. The embeddings and permissions children
// live in their own relations and never appear in a content field map.
const (
	ColNoteId        = "id"
	ColNoteTitle     = "title"
	ColNoteContent   = "content"
	ColNoteAuthorId  = "author_id"
	ColNoteUpdatedAt = "updated_at"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// ToFieldMap flattens the content-relation subset of a note into an
// ordered field map. Unset fields stay Unset and are dropped at bind
// time.
func (m *NoteMapper) ToFieldMap(e entity.Note) *field.Map {
	fm := field.NewMap()
	fm.Put(ColNoteId, e.Id)
	fm.Put(ColNoteTitle, e.Title)
	fm.Put(ColNoteContent, e.Content)
	fm.Put(ColNoteAuthorId, e.AuthorId)
	fm.Put(ColNoteUpdatedAt, e.UpdatedAt)
	return fm
}

// FromFieldMap is the inverse of ToFieldMap for all non-Unset fields.
func (m *NoteMapper) FromFieldMap(fm *field.Map) entity.Note {
	var e entity.Note
	if s, ok := fm.Get(ColNoteId); ok {
		e.Id = s.(field.Value[int64])
	}
	if s, ok := fm.Get(ColNoteTitle); ok {
		e.Title = s.(field.Value[string])
	}
	if s, ok := fm.Get(ColNoteContent); ok {
		e.Content = s.(field.Value[string])
	}
	if s, ok := fm.Get(ColNoteAuthorId); ok {
		e.AuthorId = s.(field.Value[int64])
	}
	if s, ok := fm.Get(ColNoteUpdatedAt); ok {
		e.UpdatedAt = s.(field.Value[time.Time])
	}
	return e
}

// FromRow rebuilds a note entity from a database row.
func (m *NoteMapper) FromRow(row table.Row) entity.Note {
	return entity.Note{
		Id:        int64Field(row, ColNoteId),
		Title:     stringField(row, ColNoteTitle),
		Content:   stringField(row, ColNoteContent),
		AuthorId:  int64Field(row, ColNoteAuthorId),
		UpdatedAt: timeField(row, ColNoteUpdatedAt),
	}
}
