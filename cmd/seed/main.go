package main

import (
	"context"
	"log"

	"semantic-notes-be/internal/config"
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/repository/facade"
	"semantic-notes-be/internal/repository/unitofwork"
	"semantic-notes-be/pkg/database"
	"semantic-notes-be/pkg/embedding"
	"semantic-notes-be/pkg/field"

	"github.com/fatih/color"
)

// Seeds a small demo corpus through the full aggregate path, so every
// note gets its embedding derived the same way production writes do.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var provider embedding.EmbeddingProvider
	model := cfg.Ai.EmbeddingModel
	if cfg.Ai.EmbeddingProvider == "ollama" {
		if model == "" {
			model = "nomic-embed-text"
		}
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, model)
	} else {
		if model == "" {
			model = "text-embedding-004"
		}
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, model)
	}
	generator := embedding.NewGenerator(provider, model)

	uowFactory := unitofwork.NewRepositoryFactory(db, generator)
	notes := facade.NewNoteRepository(db, uowFactory, generator)

	seedAuthorId := int64(1)
	corpus := []struct {
		title   string
		content string
	}{
		{"Grocery list", "Milk, eggs, sourdough bread, olive oil, coffee beans."},
		{"Meeting notes 2026-08-12", "Discussed the Q3 roadmap. Action items: finalize the search rollout, schedule load tests."},
		{"Pasta carbonara", "Guanciale, pecorino romano, eggs, black pepper. Never add cream."},
		{"Reading list", "The Go Programming Language, Designing Data-Intensive Applications."},
		{"Trip ideas", "Hiking in the Dolomites in June, or the Lofoten islands for the midnight sun."},
	}

	ctx := context.Background()
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	for _, item := range corpus {
		note := entity.Note{
			Title:    field.Of(item.title),
			Content:  field.Of(item.content),
			AuthorId: field.Of(seedAuthorId),
			Permissions: field.Of([]entity.NotePermission{
				{RoleId: field.Of(int64(1))},
			}),
		}

		created, err := notes.Insert(ctx, note)
		if err != nil {
			fail.Printf("✗ %s: %v\n", item.title, err)
			continue
		}
		ok.Printf("✓ %s (id=%d)\n", item.title, created.Id.OrZero())
	}

	log.Println("Seeding completed")
}
