// Package facade composes the per-relation note repositories into the
// aggregate contract.NoteRepository. It sits above unitofwork so the
// per-relation implementations stay free of orchestration concerns.
package facade

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/dto"
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/search"
	"semantic-notes-be/internal/repository/unitofwork"
	"semantic-notes-be/pkg/embedding"
	"semantic-notes-be/pkg/field"
)

// NoteRepositoryImpl composes the per-relation repositories into the
// aggregate facade. Multi-relation writes run inside one unit of work;
// reads fan out to the relations and merge.
type NoteRepositoryImpl struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	generator  *embedding.Generator
}

func NewNoteRepository(db *gorm.DB, uowFactory unitofwork.RepositoryFactory, generator *embedding.Generator) contract.NoteRepository {
	return &NoteRepositoryImpl{db: db, uowFactory: uowFactory, generator: generator}
}

func (r *NoteRepositoryImpl) Insert(ctx context.Context, note entity.Note) (entity.Note, error) {
	if note.Embeddings.IsSet() && len(note.Embeddings.OrZero()) > 0 {
		return entity.Note{}, fmt.Errorf("%w: embeddings are derived from content, not supplied", contract.ErrPrecondition)
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return entity.Note{}, err
	}
	defer uow.Rollback()

	// The server assigns the id.
	content := note
	content.Id = field.Unset[int64]()
	content.Embeddings = field.Unset[[]entity.NoteEmbedding]()
	content.Permissions = field.Unset[[]entity.NotePermission]()

	inserted, err := uow.ContentRepository().Insert(ctx, content)
	if err != nil {
		return entity.Note{}, err
	}
	noteId, ok := inserted.Id.Get()
	if !ok {
		return entity.Note{}, fmt.Errorf("%w: inserted row has no id", contract.ErrWriteFailed)
	}

	embeddings := []entity.NoteEmbedding{}
	if inserted.Content.OrZero() != "" {
		emb, err := uow.EmbeddingRepository().CreateFromContent(ctx, noteId, inserted.Title.OrZero(), inserted.Content.OrZero())
		if err != nil {
			return entity.Note{}, err
		}
		embeddings = append(embeddings, emb)
	}

	permissions := []entity.NotePermission{}
	for _, perm := range note.Permissions.OrZero() {
		perm.NoteId = noteId
		saved, err := uow.PermissionRepository().Insert(ctx, perm)
		if err != nil {
			return entity.Note{}, err
		}
		permissions = append(permissions, saved)
	}

	if err := uow.Commit(); err != nil {
		return entity.Note{}, err
	}

	inserted.Embeddings = field.Of(embeddings)
	inserted.Permissions = field.Of(permissions)
	return inserted, nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note entity.Note, userCtx dto.UserContext) (entity.Note, error) {
	noteId, ok := note.Id.Get()
	if !ok {
		return entity.Note{}, fmt.Errorf("%w: update requires a note id", contract.ErrPrecondition)
	}

	set := note
	set.Id = field.Unset[int64]()
	set.Embeddings = field.Unset[[]entity.NoteEmbedding]()
	set.Permissions = field.Unset[[]entity.NotePermission]()

	where := entity.Note{Id: field.Of(noteId)}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.ContentRepository().Update(ctx, set, where)
	if err != nil {
		return entity.Note{}, err
	}

	// Children are echoed back from the input, not re-read; callers
	// wanting persisted children re-select.
	updated.Embeddings = field.Of(note.Embeddings.OrZero())
	updated.Permissions = field.Of(note.Permissions.OrZero())
	return updated, nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, noteId int64, userCtx dto.UserContext) (entity.Note, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return entity.Note{}, err
	}
	defer uow.Rollback()

	// Children first so the content row's foreign keys never dangle.
	// Zero child rows is normal, not a failure.
	embWhere := entity.NoteEmbedding{NoteId: noteId}
	if _, err := uow.EmbeddingRepository().Delete(ctx, embWhere); err != nil && !errors.Is(err, contract.ErrWriteFailed) {
		return entity.Note{}, err
	}
	permWhere := entity.NotePermission{NoteId: noteId}
	if _, err := uow.PermissionRepository().Delete(ctx, permWhere); err != nil && !errors.Is(err, contract.ErrWriteFailed) {
		return entity.Note{}, err
	}

	where := entity.Note{
		Id:       field.Of(noteId),
		AuthorId: field.Of(userCtx.UserId),
	}
	deleted, err := uow.ContentRepository().Delete(ctx, where)
	if err != nil {
		if errors.Is(err, contract.ErrWriteFailed) {
			return entity.Note{}, fmt.Errorf("%w: note %d", contract.ErrNotFound, noteId)
		}
		return entity.Note{}, err
	}

	if err := uow.Commit(); err != nil {
		return entity.Note{}, err
	}
	return deleted, nil
}

func (r *NoteRepositoryImpl) SelectById(ctx context.Context, noteId int64, userCtx dto.UserContext) (*entity.Note, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.ContentRepository().SelectById(ctx, noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	embeddings, err := uow.EmbeddingRepository().Select(ctx, entity.NoteEmbedding{NoteId: noteId})
	if err != nil {
		return nil, err
	}
	permissions, err := uow.PermissionRepository().Select(ctx, entity.NotePermission{NoteId: noteId})
	if err != nil {
		return nil, err
	}

	note.Embeddings = field.Of(embeddings)
	note.Permissions = field.Of(permissions)
	return note, nil
}

func (r *NoteRepositoryImpl) SearchNotes(ctx context.Context, searchType contract.SearchType, query string, userCtx dto.UserContext, pagination dto.Pagination) ([]entity.Note, error) {
	params := search.Params{
		Query:  query,
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
		UserId: userCtx.UserId,
	}
	strategy, err := search.New(searchType, r.db, params, r.generator)
	if err != nil {
		return nil, err
	}
	return strategy.Search(ctx)
}
