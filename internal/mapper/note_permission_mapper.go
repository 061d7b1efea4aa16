package mapper

import (
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/field"
)

// note.permission column names.
const (
	ColPermissionNoteId = "note_id"
	ColPermissionRoleId = "role_id"
)

type NotePermissionMapper struct{}

func NewNotePermissionMapper() *NotePermissionMapper {
	return &NotePermissionMapper{}
}

func (m *NotePermissionMapper) ToFieldMap(e entity.NotePermission) *field.Map {
	fm := field.NewMap()
	fm.Put(ColPermissionNoteId, field.Of(e.NoteId))
	fm.Put(ColPermissionRoleId, e.RoleId)
	return fm
}

func (m *NotePermissionMapper) FromRow(row table.Row) entity.NotePermission {
	return entity.NotePermission{
		NoteId: int64Field(row, ColPermissionNoteId).OrZero(),
		RoleId: int64Field(row, ColPermissionRoleId),
	}
}
