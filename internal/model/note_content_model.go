package model

import (
	"time"
)

// NoteContent mirrors the note.content relation for migration. Data
// access goes through the parameterized table layer, not these models.
type NoteContent struct {
	Id        int64      `gorm:"primaryKey;autoIncrement"`
	Title     *string    `gorm:"type:text"`
	Content   *string    `gorm:"type:text"`
	AuthorId  *int64     `gorm:"index"`
	UpdatedAt *time.Time `gorm:"index"`
}

func (NoteContent) TableName() string {
	return "note.content"
}
