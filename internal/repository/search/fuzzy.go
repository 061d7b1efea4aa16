package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/table"
)

// FuzzyStrategy ranks notes by trigram similarity of the query against
// the concatenated title and body. Requires the pg_trgm extension.
type FuzzyStrategy struct {
	db     *gorm.DB
	params Params
}

func (s *FuzzyStrategy) Search(ctx context.Context) ([]entity.Note, error) {
	sql := `SELECT c.*,
			similarity(coalesce(c.title, '') || ' ' || coalesce(c.content, ''), ?) AS sim
		FROM note.content c
		WHERE c.author_id = ?
		ORDER BY sim DESC, c.updated_at DESC NULLS LAST
		LIMIT ? OFFSET ?`

	var rows []table.Row
	err := s.db.WithContext(ctx).
		Raw(sql, s.params.Query, s.params.UserId, s.params.Limit, s.params.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fuzzy search: %w", err)
	}

	noteMapper := &mapper.NoteMapper{}
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, noteMapper.FromRow(row))
	}
	return notes, nil
}
