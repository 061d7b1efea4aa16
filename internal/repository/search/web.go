package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/table"
)

// WebStrategy ranks notes by full-text match of the query against the
// note title, using websearch syntax so users can quote phrases and
// negate terms.
type WebStrategy struct {
	db     *gorm.DB
	params Params
}

func (s *WebStrategy) Search(ctx context.Context) ([]entity.Note, error) {
	sql := `SELECT c.*,
			ts_rank(to_tsvector('english', coalesce(c.title, '')), websearch_to_tsquery('english', ?)) AS rank
		FROM note.content c
		WHERE c.author_id = ?
		  AND to_tsvector('english', coalesce(c.title, '')) @@ websearch_to_tsquery('english', ?)
		ORDER BY rank DESC, c.updated_at DESC NULLS LAST
		LIMIT ? OFFSET ?`

	var rows []table.Row
	err := s.db.WithContext(ctx).
		Raw(sql, s.params.Query, s.params.UserId, s.params.Query, s.params.Limit, s.params.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("full text search: %w", err)
	}

	noteMapper := &mapper.NoteMapper{}
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, noteMapper.FromRow(row))
	}
	return notes, nil
}
