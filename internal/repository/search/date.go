package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/table"
)

// DateStrategy returns the user's notes newest first. It ignores the
// query string, so it doubles as the plain listing endpoint.
type DateStrategy struct {
	db     *gorm.DB
	params Params
}

func (s *DateStrategy) Search(ctx context.Context) ([]entity.Note, error) {
	sql := `SELECT c.*
		FROM note.content c
		WHERE c.author_id = ?
		ORDER BY c.updated_at DESC NULLS LAST
		LIMIT ? OFFSET ?`

	var rows []table.Row
	if err := s.db.WithContext(ctx).Raw(sql, s.params.UserId, s.params.Limit, s.params.Offset).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("date search: %w", err)
	}

	noteMapper := &mapper.NoteMapper{}
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, noteMapper.FromRow(row))
	}
	return notes, nil
}
