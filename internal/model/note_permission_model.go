package model

// NotePermission mirrors the note.permission relation. Composite key
// (note_id, role_id); rows have no lifecycle of their own.
type NotePermission struct {
	NoteId int64 `gorm:"primaryKey;autoIncrement:false"`
	RoleId int64 `gorm:"primaryKey;autoIncrement:false"`
}

func (NotePermission) TableName() string {
	return "note.permission"
}
