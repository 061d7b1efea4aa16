package facade

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semantic-notes-be/internal/dto"
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/unitofwork"
	"semantic-notes-be/pkg/embedding"
	"semantic-notes-be/pkg/field"
)

// In-memory doubles for the per-relation repositories. They record the
// arguments they receive so the tests can assert on the aggregate
// orchestration without a database.

type fakeContentRepo struct {
	nextId    int64
	inserted  []entity.Note
	updated   []entity.Note
	deleteErr error
	stored    *entity.Note
}

func (f *fakeContentRepo) Insert(ctx context.Context, note entity.Note) (entity.Note, error) {
	f.inserted = append(f.inserted, note)
	note.Id = field.Of(f.nextId)
	return note, nil
}

func (f *fakeContentRepo) Update(ctx context.Context, set, where entity.Note) (entity.Note, error) {
	f.updated = append(f.updated, set)
	result := set
	result.Id = where.Id
	return result, nil
}

func (f *fakeContentRepo) Delete(ctx context.Context, where entity.Note) (entity.Note, error) {
	if f.deleteErr != nil {
		return entity.Note{}, f.deleteErr
	}
	return entity.Note{Id: where.Id}, nil
}

func (f *fakeContentRepo) Select(ctx context.Context, where entity.Note) ([]entity.Note, error) {
	if f.stored == nil {
		return nil, nil
	}
	return []entity.Note{*f.stored}, nil
}

func (f *fakeContentRepo) SelectById(ctx context.Context, id int64) (*entity.Note, error) {
	return f.stored, nil
}

type fakePermissionRepo struct {
	inserted []entity.NotePermission
	stored   []entity.NotePermission
}

func (f *fakePermissionRepo) Insert(ctx context.Context, perm entity.NotePermission) (entity.NotePermission, error) {
	f.inserted = append(f.inserted, perm)
	return perm, nil
}

func (f *fakePermissionRepo) Update(ctx context.Context, set, where entity.NotePermission) (entity.NotePermission, error) {
	return set, nil
}

func (f *fakePermissionRepo) Delete(ctx context.Context, where entity.NotePermission) (entity.NotePermission, error) {
	return where, nil
}

func (f *fakePermissionRepo) Select(ctx context.Context, where entity.NotePermission) ([]entity.NotePermission, error) {
	return f.stored, nil
}

type fakeEmbeddingRepo struct {
	created   []string
	createErr error
	deleteErr error
	stored    []entity.NoteEmbedding
}

func (f *fakeEmbeddingRepo) Insert(ctx context.Context, emb entity.NoteEmbedding) (entity.NoteEmbedding, error) {
	return emb, nil
}

func (f *fakeEmbeddingRepo) Update(ctx context.Context, set, where entity.NoteEmbedding) (entity.NoteEmbedding, error) {
	return set, nil
}

func (f *fakeEmbeddingRepo) Delete(ctx context.Context, where entity.NoteEmbedding) (entity.NoteEmbedding, error) {
	if f.deleteErr != nil {
		return entity.NoteEmbedding{}, f.deleteErr
	}
	return where, nil
}

func (f *fakeEmbeddingRepo) Select(ctx context.Context, where entity.NoteEmbedding) ([]entity.NoteEmbedding, error) {
	return f.stored, nil
}

func (f *fakeEmbeddingRepo) CreateFromContent(ctx context.Context, noteId int64, title, content string) (entity.NoteEmbedding, error) {
	if f.createErr != nil {
		return entity.NoteEmbedding{}, f.createErr
	}
	f.created = append(f.created, fmt.Sprintf("%d:%s", noteId, title))
	return entity.NoteEmbedding{
		NoteId:    noteId,
		Model:     field.Of("fake-model"),
		Embedding: field.Of([]float32{1, 2, 3}),
	}, nil
}

func (f *fakeEmbeddingRepo) Generator() *embedding.Generator {
	return nil
}

type fakeUnitOfWork struct {
	content    *fakeContentRepo
	permission *fakePermissionRepo
	embedding  *fakeEmbeddingRepo

	began      bool
	committed  bool
	rolledBack bool
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { f.began = true; return nil }
func (f *fakeUnitOfWork) Commit() error                   { f.committed = true; return nil }
func (f *fakeUnitOfWork) Rollback() error                 { f.rolledBack = true; return nil }

func (f *fakeUnitOfWork) ContentRepository() contract.NoteContentRepository {
	return f.content
}

func (f *fakeUnitOfWork) PermissionRepository() contract.NotePermissionRepository {
	return f.permission
}

func (f *fakeUnitOfWork) EmbeddingRepository() contract.NoteEmbeddingRepository {
	return f.embedding
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeRepo(uow *fakeUnitOfWork) contract.NoteRepository {
	return NewNoteRepository(nil, &fakeFactory{uow: uow}, nil)
}

func newFakeUow() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		content:    &fakeContentRepo{nextId: 42},
		permission: &fakePermissionRepo{},
		embedding:  &fakeEmbeddingRepo{},
	}
}

func TestInsertDerivesEmbeddingAndBackfillsPermissions(t *testing.T) {
	uow := newFakeUow()
	repo := newFakeRepo(uow)

	note := entity.Note{
		Title:    field.Of("my note"),
		Content:  field.Of("some content"),
		AuthorId: field.Of(int64(7)),
		Permissions: field.Of([]entity.NotePermission{
			{RoleId: field.Of(int64(1))},
			{RoleId: field.Of(int64(2))},
		}),
	}

	created, err := repo.Insert(context.Background(), note)
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.Id.OrZero())
	assert.True(t, uow.began)
	assert.True(t, uow.committed)

	// Content insert carries no children and no caller-chosen id.
	require.Len(t, uow.content.inserted, 1)
	assert.True(t, uow.content.inserted[0].Id.IsUnset())
	assert.True(t, uow.content.inserted[0].Embeddings.IsUnset())
	assert.True(t, uow.content.inserted[0].Permissions.IsUnset())

	// One embedding derived from the content.
	assert.Equal(t, []string{"42:my note"}, uow.embedding.created)
	require.True(t, created.Embeddings.IsSet())
	assert.Len(t, created.Embeddings.OrZero(), 1)

	// Permissions get the fresh note id.
	require.Len(t, uow.permission.inserted, 2)
	assert.Equal(t, int64(42), uow.permission.inserted[0].NoteId)
	assert.Equal(t, int64(42), uow.permission.inserted[1].NoteId)
	require.True(t, created.Permissions.IsSet())
	assert.Len(t, created.Permissions.OrZero(), 2)
}

func TestInsertRejectsPreSuppliedEmbeddings(t *testing.T) {
	uow := newFakeUow()
	repo := newFakeRepo(uow)

	note := entity.Note{
		Content: field.Of("content"),
		Embeddings: field.Of([]entity.NoteEmbedding{
			{NoteId: 1, Model: field.Of("m")},
		}),
	}

	_, err := repo.Insert(context.Background(), note)
	assert.ErrorIs(t, err, contract.ErrPrecondition)
	assert.False(t, uow.began)
}

func TestInsertSkipsEmbeddingForEmptyContent(t *testing.T) {
	uow := newFakeUow()
	repo := newFakeRepo(uow)

	note := entity.Note{Title: field.Of("title only")}

	created, err := repo.Insert(context.Background(), note)
	require.NoError(t, err)

	assert.Empty(t, uow.embedding.created)
	require.True(t, created.Embeddings.IsSet())
	assert.Empty(t, created.Embeddings.OrZero())
	require.True(t, created.Permissions.IsSet())
	assert.Empty(t, created.Permissions.OrZero())
}

func TestUpdateTouchesContentOnlyAndEchoesChildren(t *testing.T) {
	uow := newFakeUow()
	repo := newFakeRepo(uow)

	permissions := []entity.NotePermission{{NoteId: 9, RoleId: field.Of(int64(5))}}
	note := entity.Note{
		Id:          field.Of(int64(9)),
		Title:       field.Of("renamed"),
		Permissions: field.Of(permissions),
	}

	updated, err := repo.Update(context.Background(), note, dto.UserContext{UserId: 7})
	require.NoError(t, err)

	// The content write never sees the children.
	require.Len(t, uow.content.updated, 1)
	assert.True(t, uow.content.updated[0].Permissions.IsUnset())
	assert.True(t, uow.content.updated[0].Embeddings.IsUnset())

	// The result echoes the input children, not persisted state.
	assert.Equal(t, permissions, updated.Permissions.OrZero())
	assert.Empty(t, updated.Embeddings.OrZero())
}

func TestUpdateRequiresId(t *testing.T) {
	repo := newFakeRepo(newFakeUow())

	_, err := repo.Update(context.Background(), entity.Note{Title: field.Of("x")}, dto.UserContext{UserId: 7})
	assert.ErrorIs(t, err, contract.ErrPrecondition)
}

func TestDeleteScopedToOwner(t *testing.T) {
	uow := newFakeUow()
	repo := newFakeRepo(uow)

	deleted, err := repo.Delete(context.Background(), 9, dto.UserContext{UserId: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(9), deleted.Id.OrZero())
	assert.True(t, uow.committed)
}

func TestDeleteForeignNoteIsNotFound(t *testing.T) {
	uow := newFakeUow()
	uow.content.deleteErr = fmt.Errorf("delete from note.content: %w", contract.ErrWriteFailed)
	repo := newFakeRepo(uow)

	_, err := repo.Delete(context.Background(), 9, dto.UserContext{UserId: 99})
	assert.ErrorIs(t, err, contract.ErrNotFound)
	assert.False(t, uow.committed)
	assert.True(t, uow.rolledBack)
}

func TestDeleteToleratesMissingChildren(t *testing.T) {
	uow := newFakeUow()
	uow.embedding.deleteErr = fmt.Errorf("delete from note.embedding: %w", contract.ErrWriteFailed)
	repo := newFakeRepo(uow)

	_, err := repo.Delete(context.Background(), 9, dto.UserContext{UserId: 7})
	require.NoError(t, err)
	assert.True(t, uow.committed)
}

func TestSelectByIdMergesChildren(t *testing.T) {
	uow := newFakeUow()
	uow.content.stored = &entity.Note{
		Id:    field.Of(int64(9)),
		Title: field.Of("stored"),
	}
	uow.embedding.stored = []entity.NoteEmbedding{{NoteId: 9, Model: field.Of("m")}}
	uow.permission.stored = []entity.NotePermission{{NoteId: 9, RoleId: field.Of(int64(3))}}
	repo := newFakeRepo(uow)

	note, err := repo.SelectById(context.Background(), 9, dto.UserContext{UserId: 7})
	require.NoError(t, err)
	require.NotNil(t, note)

	assert.Len(t, note.Embeddings.OrZero(), 1)
	assert.Len(t, note.Permissions.OrZero(), 1)
}

func TestSelectByIdMissingNote(t *testing.T) {
	repo := newFakeRepo(newFakeUow())

	note, err := repo.SelectById(context.Background(), 404, dto.UserContext{UserId: 7})
	require.NoError(t, err)
	assert.Nil(t, note)
}
