package implementation

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/embedding"
	"semantic-notes-be/pkg/field"
)

const EmbeddingTableName = "note.embedding"

type NoteEmbeddingRepositoryImpl struct {
	table     *table.Table
	mapper    *mapper.NoteEmbeddingMapper
	generator *embedding.Generator
}

func NewNoteEmbeddingRepository(db *gorm.DB, generator *embedding.Generator) contract.NoteEmbeddingRepository {
	return &NoteEmbeddingRepositoryImpl{
		table:     table.New(db, EmbeddingTableName),
		mapper:    mapper.NewNoteEmbeddingMapper(),
		generator: generator,
	}
}

func (r *NoteEmbeddingRepositoryImpl) Generator() *embedding.Generator {
	return r.generator
}

func (r *NoteEmbeddingRepositoryImpl) Insert(ctx context.Context, emb entity.NoteEmbedding) (entity.NoteEmbedding, error) {
	row, err := r.table.Insert(ctx, r.mapper.ToFieldMap(emb))
	if err != nil {
		return entity.NoteEmbedding{}, err
	}
	return r.mapper.FromRow(row)
}

func (r *NoteEmbeddingRepositoryImpl) Update(ctx context.Context, set, where entity.NoteEmbedding) (entity.NoteEmbedding, error) {
	row, err := r.table.Update(ctx, r.mapper.ToFieldMap(set), r.mapper.ToFieldMap(where))
	if err != nil {
		return entity.NoteEmbedding{}, err
	}
	return r.mapper.FromRow(row)
}

func (r *NoteEmbeddingRepositoryImpl) Delete(ctx context.Context, where entity.NoteEmbedding) (entity.NoteEmbedding, error) {
	row, err := r.table.Delete(ctx, r.mapper.ToFieldMap(where))
	if err != nil {
		return entity.NoteEmbedding{}, err
	}
	return r.mapper.FromRow(row)
}

func (r *NoteEmbeddingRepositoryImpl) Select(ctx context.Context, where entity.NoteEmbedding) ([]entity.NoteEmbedding, error) {
	rows, err := r.table.Select(ctx, r.mapper.ToFieldMap(where))
	if err != nil {
		return nil, err
	}

	embeddings := make([]entity.NoteEmbedding, 0, len(rows))
	for _, row := range rows {
		e, err := r.mapper.FromRow(row)
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, e)
	}
	return embeddings, nil
}

func (r *NoteEmbeddingRepositoryImpl) CreateFromContent(ctx context.Context, noteId int64, title, content string) (entity.NoteEmbedding, error) {
	text := content
	if title != "" {
		text = title + "\n\n" + content
	}

	vec, err := r.generator.GenerateDocument(ctx, text)
	if err != nil {
		return entity.NoteEmbedding{}, fmt.Errorf("%w: note %d: %v", contract.ErrEmbedding, noteId, err)
	}

	return r.Insert(ctx, entity.NoteEmbedding{
		NoteId:    noteId,
		Model:     field.Of(r.generator.ModelName()),
		Embedding: field.Of(vec),
	})
}
