package contract

import (
	"context"

	"semantic-notes-be/internal/dto"
	"semantic-notes-be/internal/entity"
)

// NoteRepository is the facade over the three note relations. It is the
// only place that understands "a note" as the union of content,
// embedding and permission rows.
type NoteRepository interface {
	// Insert creates the full aggregate inside one transaction: the
	// content row first (server assigns the id), then one derived
	// embedding when the content is non-empty, then the caller-supplied
	// permission rows with the note id back-filled. Pre-supplied
	// embeddings are rejected; they are always derived. The returned
	// entity is fully resolved: Embeddings and Permissions are Set,
	// defaulting to empty lists.
	Insert(ctx context.Context, note entity.Note) (entity.Note, error)

	// Update mutates the content relation only, keyed by note id.
	// Embeddings and permissions are forced Unset before delegating and
	// then merged back verbatim into the result; they do NOT reflect
	// persisted state after the call.
	Update(ctx context.Context, note entity.Note, userCtx dto.UserContext) (entity.Note, error)

	// Delete removes the aggregate (content plus children, one
	// transaction), scoped by author_id = userCtx.UserId. A note owned
	// by another user fails with ErrNotFound.
	Delete(ctx context.Context, noteId int64, userCtx dto.UserContext) (entity.Note, error)

	// SelectById returns the merged aggregate, or nil when no content
	// row exists.
	SelectById(ctx context.Context, noteId int64, userCtx dto.UserContext) (*entity.Note, error)

	// SearchNotes ranks the user's notes with the strategy selected by
	// searchType. An unknown type fails with ErrInvalidSearchType
	// before any query is issued.
	SearchNotes(ctx context.Context, searchType SearchType, query string, userCtx dto.UserContext, pagination dto.Pagination) ([]entity.Note, error)
}
