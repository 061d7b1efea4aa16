package contract

import (
	"context"

	"semantic-notes-be/internal/entity"
)

// NoteContentRepository is the typed accessor for the note.content
// relation. Filters are expressed as entities: only populated fields
// become predicates.
type NoteContentRepository interface {
	// Insert writes one content row and returns it with server-assigned
	// values (the id in particular).
	Insert(ctx context.Context, note entity.Note) (entity.Note, error)

	// Update applies the populated fields of set to all rows matching
	// the populated fields of where. An entirely-Unset where fails with
	// ErrPrecondition.
	Update(ctx context.Context, set, where entity.Note) (entity.Note, error)

	// Delete removes rows matching the populated fields of where and
	// returns the removed row. An entirely-Unset where fails with
	// ErrPrecondition.
	Delete(ctx context.Context, where entity.Note) (entity.Note, error)

	// Select returns all rows matching the populated fields of where;
	// no match yields an empty slice.
	Select(ctx context.Context, where entity.Note) ([]entity.Note, error)

	// SelectById returns the row with the given id, or nil when absent.
	SelectById(ctx context.Context, id int64) (*entity.Note, error)
}
