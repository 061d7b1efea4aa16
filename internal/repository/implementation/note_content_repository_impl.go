package implementation

import (
	"context"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/field"
)

const ContentTableName = "note.content"

type NoteContentRepositoryImpl struct {
	table  *table.Table
	mapper *mapper.NoteMapper
}

func NewNoteContentRepository(db *gorm.DB) contract.NoteContentRepository {
	return &NoteContentRepositoryImpl{
		table:  table.New(db, ContentTableName),
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteContentRepositoryImpl) Insert(ctx context.Context, note entity.Note) (entity.Note, error) {
	row, err := r.table.Insert(ctx, r.mapper.ToFieldMap(note))
	if err != nil {
		return entity.Note{}, err
	}
	return r.mapper.FromRow(row), nil
}

func (r *NoteContentRepositoryImpl) Update(ctx context.Context, set, where entity.Note) (entity.Note, error) {
	row, err := r.table.Update(ctx, r.mapper.ToFieldMap(set), r.mapper.ToFieldMap(where))
	if err != nil {
		return entity.Note{}, err
	}
	return r.mapper.FromRow(row), nil
}

func (r *NoteContentRepositoryImpl) Delete(ctx context.Context, where entity.Note) (entity.Note, error) {
	row, err := r.table.Delete(ctx, r.mapper.ToFieldMap(where))
	if err != nil {
		return entity.Note{}, err
	}
	return r.mapper.FromRow(row), nil
}

func (r *NoteContentRepositoryImpl) Select(ctx context.Context, where entity.Note) ([]entity.Note, error) {
	rows, err := r.table.Select(ctx, r.mapper.ToFieldMap(where))
	if err != nil {
		return nil, err
	}

	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, r.mapper.FromRow(row))
	}
	return notes, nil
}

func (r *NoteContentRepositoryImpl) SelectById(ctx context.Context, id int64) (*entity.Note, error) {
	notes, err := r.Select(ctx, entity.Note{Id: field.Of(id)})
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return &notes[0], nil
}
