package search

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/embedding"
)

// ContextStrategy embeds the query and ranks notes by cosine distance
// to their stored embeddings. Notes without an embedding row never
// match.
type ContextStrategy struct {
	db        *gorm.DB
	params    Params
	generator *embedding.Generator
}

func (s *ContextStrategy) Search(ctx context.Context) ([]entity.Note, error) {
	queryVec, err := s.generator.GenerateQuery(ctx, s.params.Query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", contract.ErrEmbedding, err)
	}

	sql := `SELECT c.*, (e.embedding <=> ?) AS distance
		FROM note.embedding e
		JOIN note.content c ON c.id = e.note_id
		WHERE c.author_id = ? AND e.model = ?
		ORDER BY distance ASC
		LIMIT ? OFFSET ?`

	var rows []table.Row
	err = s.db.WithContext(ctx).
		Raw(sql, pgvector.NewVector(queryVec), s.params.UserId, s.generator.ModelName(), s.params.Limit, s.params.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("context search: %w", err)
	}

	noteMapper := &mapper.NoteMapper{}
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, noteMapper.FromRow(row))
	}
	return notes, nil
}
