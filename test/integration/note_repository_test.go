package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semantic-notes-be/internal/dto"
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/facade"
	"semantic-notes-be/internal/repository/unitofwork"
	"semantic-notes-be/pkg/database"
	"semantic-notes-be/pkg/embedding"
	"semantic-notes-be/pkg/field"
)

// staticProvider keeps the integration run offline: a fixed vector
// instead of a live embedding API.
type staticProvider struct{}

func (staticProvider) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	values := make([]float32, 768)
	for i := range values {
		values[i] = 0.001 * float32(i%7)
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: values},
	}, nil
}

// keyedProvider maps known texts to hand-picked vectors, so cosine
// distances between documents and queries are controlled by the test.
// Unknown texts fall back to a far-away axis.
type keyedProvider struct {
	vectors map[string][]float32
}

func (p keyedProvider) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	values, ok := p.vectors[text]
	if !ok {
		values = axisVector(767)
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: values},
	}, nil
}

// axisVector returns a 768-dim unit vector with a single hot index.
// Distinct axes are orthogonal, so cosine distance between any two of
// them is exactly 1.
func axisVector(hot int) []float32 {
	values := make([]float32, 768)
	values[hot] = 1
	return values
}

func newTestRepository(t *testing.T, provider embedding.EmbeddingProvider) contract.NoteRepository {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	generator := embedding.NewGenerator(provider, "static-test-model")
	uowFactory := unitofwork.NewRepositoryFactory(db, generator)
	return facade.NewNoteRepository(db, uowFactory, generator)
}

func TestNoteAggregateLifecycle(t *testing.T) {
	repo := newTestRepository(t, staticProvider{})
	ctx := context.Background()
	userCtx := dto.UserContext{UserId: 1}

	note := entity.Note{
		Title:    field.Of("integration note"),
		Content:  field.Of("created by the integration suite"),
		AuthorId: field.Of(userCtx.UserId),
		Permissions: field.Of([]entity.NotePermission{
			{RoleId: field.Of(int64(1))},
		}),
	}

	created, err := repo.Insert(ctx, note)
	require.NoError(t, err)
	noteId := created.Id.OrZero()
	require.NotZero(t, noteId)

	t.Cleanup(func() {
		repo.Delete(ctx, noteId, userCtx)
	})

	assert.Len(t, created.Embeddings.OrZero(), 1)
	assert.Len(t, created.Permissions.OrZero(), 1)

	t.Run("select merges children", func(t *testing.T) {
		got, err := repo.SelectById(ctx, noteId, userCtx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "integration note", got.Title.OrZero())
		assert.Len(t, got.Embeddings.OrZero(), 1)
		assert.Len(t, got.Permissions.OrZero(), 1)
	})

	t.Run("update content only", func(t *testing.T) {
		updated, err := repo.Update(ctx, entity.Note{
			Id:    field.Of(noteId),
			Title: field.Of("renamed note"),
		}, userCtx)
		require.NoError(t, err)
		assert.Equal(t, "renamed note", updated.Title.OrZero())
	})

	t.Run("search by date finds the note", func(t *testing.T) {
		notes, err := repo.SearchNotes(ctx, contract.SearchTypeNoSearch, "", userCtx, dto.Pagination{Limit: 50})
		require.NoError(t, err)

		found := false
		for _, n := range notes {
			if n.Id.OrZero() == noteId {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		_, err := repo.Delete(ctx, noteId, dto.UserContext{UserId: 999999})
		assert.ErrorIs(t, err, contract.ErrNotFound)

		_, err = repo.Delete(ctx, noteId, userCtx)
		require.NoError(t, err)

		got, err := repo.SelectById(ctx, noteId, userCtx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSearchStrategyOrdering(t *testing.T) {
	// Document texts the way the embedding repository derives them:
	// title, blank line, content.
	pastaDoc := "Pasta carbonara\n\nGuanciale, pecorino romano, eggs, black pepper."
	hikingDoc := "Hiking the Dolomites\n\nAlta Via 1 in June, hut to hut."
	taxesDoc := "Tax paperwork\n\nCollect receipts before the filing deadline."

	// The query leans hard toward the pasta axis with a trace of the
	// hiking axis, so cosine distance ranks pasta < hiking < taxes.
	queryVec := make([]float32, 768)
	queryVec[0] = 0.9
	queryVec[1] = 0.1

	repo := newTestRepository(t, keyedProvider{vectors: map[string][]float32{
		pastaDoc:            axisVector(0),
		hikingDoc:           axisVector(1),
		taxesDoc:            axisVector(2),
		"an italian dinner": queryVec,
	}})
	ctx := context.Background()
	// A dedicated author keeps other suites' notes out of the ranking.
	userCtx := dto.UserContext{UserId: 424242}

	seed := []struct {
		title, content string
	}{
		{"Pasta carbonara", "Guanciale, pecorino romano, eggs, black pepper."},
		{"Hiking the Dolomites", "Alta Via 1 in June, hut to hut."},
		{"Tax paperwork", "Collect receipts before the filing deadline."},
	}

	ids := make(map[string]int64, len(seed))
	for _, s := range seed {
		created, err := repo.Insert(ctx, entity.Note{
			Title:    field.Of(s.title),
			Content:  field.Of(s.content),
			AuthorId: field.Of(userCtx.UserId),
		})
		require.NoError(t, err)
		ids[s.title] = created.Id.OrZero()
		noteId := created.Id.OrZero()
		t.Cleanup(func() {
			repo.Delete(ctx, noteId, userCtx)
		})
	}

	t.Run("context search ranks by cosine distance", func(t *testing.T) {
		notes, err := repo.SearchNotes(ctx, contract.SearchTypeContext, "an italian dinner", userCtx, dto.Pagination{Limit: 10})
		require.NoError(t, err)
		require.Len(t, notes, 3)

		assert.Equal(t, ids["Pasta carbonara"], notes[0].Id.OrZero())
		assert.Equal(t, ids["Hiking the Dolomites"], notes[1].Id.OrZero())
		assert.Equal(t, ids["Tax paperwork"], notes[2].Id.OrZero())
	})

	t.Run("fuzzy search ranks the closest title first", func(t *testing.T) {
		notes, err := repo.SearchNotes(ctx, contract.SearchTypeFuzzy, "carbonara", userCtx, dto.Pagination{Limit: 10})
		require.NoError(t, err)
		require.NotEmpty(t, notes)

		assert.Equal(t, ids["Pasta carbonara"], notes[0].Id.OrZero())
	})

	t.Run("full text search matches the title", func(t *testing.T) {
		notes, err := repo.SearchNotes(ctx, contract.SearchTypeFullTextTitle, "hiking", userCtx, dto.Pagination{Limit: 10})
		require.NoError(t, err)
		require.Len(t, notes, 1)

		assert.Equal(t, ids["Hiking the Dolomites"], notes[0].Id.OrZero())
	})
}
