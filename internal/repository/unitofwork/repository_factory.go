package unitofwork

import (
	"context"

	"gorm.io/gorm"

	"semantic-notes-be/pkg/embedding"
)

type repositoryFactory struct {
	db        *gorm.DB
	generator *embedding.Generator
}

func NewRepositoryFactory(db *gorm.DB, generator *embedding.Generator) RepositoryFactory {
	return &repositoryFactory{db: db, generator: generator}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db.WithContext(ctx), f.generator)
}
