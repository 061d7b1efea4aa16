package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/implementation"
	"semantic-notes-be/pkg/embedding"
)

type UnitOfWorkImpl struct {
	db        *gorm.DB
	tx        *gorm.DB // active transaction, nil outside Begin/Commit
	generator *embedding.Generator
}

func NewUnitOfWork(db *gorm.DB, generator *embedding.Generator) UnitOfWork {
	return &UnitOfWorkImpl{
		db:        db,
		generator: generator,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ContentRepository() contract.NoteContentRepository {
	return implementation.NewNoteContentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PermissionRepository() contract.NotePermissionRepository {
	return implementation.NewNotePermissionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmbeddingRepository() contract.NoteEmbeddingRepository {
	return implementation.NewNoteEmbeddingRepository(u.getDB(), u.generator)
}
