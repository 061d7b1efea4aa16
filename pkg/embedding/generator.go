package embedding

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Generator wraps an EmbeddingProvider with a fixed model identity.
// The model name is immutable for the lifetime of the Generator, which
// is what makes the (note_id, model) embedding key meaningful.
//
// Query embeddings are cached in-process: the same search text hitting
// the same model does not pay for a second inference round-trip.
// Document embeddings are never cached.
type Generator struct {
	provider EmbeddingProvider
	model    string
	cache    *gocache.Cache
}

func NewGenerator(provider EmbeddingProvider, model string) *Generator {
	return &Generator{
		provider: provider,
		model:    model,
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// ModelName returns the immutable model identity of this generator.
func (g *Generator) ModelName() string {
	return g.model
}

// GenerateDocument embeds note content for storage.
func (g *Generator) GenerateDocument(ctx context.Context, text string) ([]float32, error) {
	res, err := g.provider.Generate(ctx, text, TaskTypeDocument)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed for model %s: %w", g.model, err)
	}
	return res.Embedding.Values, nil
}

// GenerateQuery embeds a search query. Results are cached per
// (model, text) for a short period.
func (g *Generator) GenerateQuery(ctx context.Context, text string) ([]float32, error) {
	key := g.model + "\x00" + text
	if cached, ok := g.cache.Get(key); ok {
		return cached.([]float32), nil
	}

	res, err := g.provider.Generate(ctx, text, TaskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed for model %s: %w", g.model, err)
	}

	g.cache.Set(key, res.Embedding.Values, gocache.DefaultExpiration)
	return res.Embedding.Values, nil
}
