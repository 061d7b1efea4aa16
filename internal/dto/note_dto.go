package dto

import "time"

type CreateNoteRequest struct {
	Title   *string             `json:"title"`
	Content *string             `json:"content"`
	Roles   []NotePermissionDto `json:"roles" validate:"dive"`
}

type UpdateNoteRequest struct {
	Id      int64   `json:"-" validate:"required"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NotePermissionDto struct {
	RoleId int64 `json:"role_id" validate:"required"`
}

type NoteResponse struct {
	Id          int64               `json:"id"`
	Title       *string             `json:"title"`
	Content     *string             `json:"content"`
	AuthorId    *int64              `json:"author_id"`
	UpdatedAt   *time.Time          `json:"updated_at"`
	Embeddings  []NoteEmbeddingDto  `json:"embeddings,omitempty"`
	Permissions []NotePermissionDto `json:"permissions,omitempty"`
}

type NoteEmbeddingDto struct {
	NoteId int64  `json:"note_id"`
	Model  string `json:"model"`
}

type SearchNotesRequest struct {
	Type   int    `json:"type" query:"type"`
	Query  string `json:"q" query:"q"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `json:"offset" query:"offset" validate:"omitempty,min=0"`
}

type SearchNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// PublishEmbedNoteMessage is the payload carried on the embed pipeline
// topic; the consumer regenerates the note's embedding row.
type PublishEmbedNoteMessage struct {
	NoteId int64 `json:"note_id"`
}
