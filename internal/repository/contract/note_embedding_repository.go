package contract

import (
	"context"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/pkg/embedding"
)

// NoteEmbeddingRepository is the typed accessor for the note.embedding
// relation.
type NoteEmbeddingRepository interface {
	Insert(ctx context.Context, emb entity.NoteEmbedding) (entity.NoteEmbedding, error)
	Update(ctx context.Context, set, where entity.NoteEmbedding) (entity.NoteEmbedding, error)
	Delete(ctx context.Context, where entity.NoteEmbedding) (entity.NoteEmbedding, error)
	Select(ctx context.Context, where entity.NoteEmbedding) ([]entity.NoteEmbedding, error)

	// CreateFromContent runs the embedding model over the note text and
	// inserts the resulting (note_id, model) row. Model failures
	// surface as ErrEmbedding.
	CreateFromContent(ctx context.Context, noteId int64, title, content string) (entity.NoteEmbedding, error)

	// Generator exposes the repository's embedding generator so search
	// strategies can vectorize queries with the same model.
	Generator() *embedding.Generator
}
