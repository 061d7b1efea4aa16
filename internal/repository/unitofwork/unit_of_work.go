package unitofwork

import (
	"context"

	"semantic-notes-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Without
// Begin, each repository call is its own statement; between Begin and
// Commit/Rollback every repository obtained from the unit runs inside
// the same transaction. Multi-relation aggregate writes (note insert,
// cascading delete) rely on this.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContentRepository() contract.NoteContentRepository
	PermissionRepository() contract.NotePermissionRepository
	EmbeddingRepository() contract.NoteEmbeddingRepository
}

// RepositoryFactory creates units of work bound to the shared
// connection pool.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
