package implementation

import (
	"context"

	"gorm.io/gorm"

	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/mapper"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/table"
)

const PermissionTableName = "note.permission"

type NotePermissionRepositoryImpl struct {
	table  *table.Table
	mapper *mapper.NotePermissionMapper
}

func NewNotePermissionRepository(db *gorm.DB) contract.NotePermissionRepository {
	return &NotePermissionRepositoryImpl{
		table:  table.New(db, PermissionTableName),
		mapper: mapper.NewNotePermissionMapper(),
	}
}

func (r *NotePermissionRepositoryImpl) Insert(ctx context.Context, perm entity.NotePermission) (entity.NotePermission, error) {
	row, err := r.table.Insert(ctx, r.mapper.ToFieldMap(perm))
	if err != nil {
		return entity.NotePermission{}, err
	}
	return r.mapper.FromRow(row), nil
}

func (r *NotePermissionRepositoryImpl) Update(ctx context.Context, set, where entity.NotePermission) (entity.NotePermission, error) {
	row, err := r.table.Update(ctx, r.mapper.ToFieldMap(set), r.mapper.ToFieldMap(where))
	if err != nil {
		return entity.NotePermission{}, err
	}
	return r.mapper.FromRow(row), nil
}

func (r *NotePermissionRepositoryImpl) Delete(ctx context.Context, where entity.NotePermission) (entity.NotePermission, error) {
	row, err := r.table.Delete(ctx, r.mapper.ToFieldMap(where))
	if err != nil {
		return entity.NotePermission{}, err
	}
	return r.mapper.FromRow(row), nil
}

func (r *NotePermissionRepositoryImpl) Select(ctx context.Context, where entity.NotePermission) ([]entity.NotePermission, error) {
	rows, err := r.table.Select(ctx, r.mapper.ToFieldMap(where))
	if err != nil {
		return nil, err
	}

	perms := make([]entity.NotePermission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, r.mapper.FromRow(row))
	}
	return perms, nil
}
