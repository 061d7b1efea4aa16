package contract

import (
	"context"

	"semantic-notes-be/internal/entity"
)

// NotePermissionRepository is the typed accessor for the
// note.permission relation.
type NotePermissionRepository interface {
	Insert(ctx context.Context, perm entity.NotePermission) (entity.NotePermission, error)
	Update(ctx context.Context, set, where entity.NotePermission) (entity.NotePermission, error)
	Delete(ctx context.Context, where entity.NotePermission) (entity.NotePermission, error)
	Select(ctx context.Context, where entity.NotePermission) ([]entity.NotePermission, error)
}
