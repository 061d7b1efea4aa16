package model

import (
	"github.com/pgvector/pgvector-go"
)

// NoteEmbedding mirrors the note.embedding relation. One row per
// (note, model) pair.
type NoteEmbedding struct {
	NoteId    int64           `gorm:"primaryKey;autoIncrement:false"`
	Model     string          `gorm:"primaryKey;type:text"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensionality
}

func (NoteEmbedding) TableName() string {
	return "note.embedding"
}
