package main

import (
	"log"
	"os"

	"semantic-notes-be/internal/model"
	"semantic-notes-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// Extensions and the note schema come first; AutoMigrate cannot
	// create either.
	log.Println("Step 1: Setting up extensions and schema...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS vector;`,
		`CREATE EXTENSION IF NOT EXISTS pg_trgm;`,
		`CREATE SCHEMA IF NOT EXISTS note;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.NoteContent{},
		&model.NoteEmbedding{},
		&model.NotePermission{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Search indexes AutoMigrate doesn't know about.
	log.Println("Step 3: Creating search indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_note_content_author_updated
		 ON note.content (author_id, updated_at DESC);`,

		`CREATE INDEX IF NOT EXISTS idx_note_content_title_tsv
		 ON note.content USING gin (to_tsvector('english', coalesce(title, '')));`,

		`CREATE INDEX IF NOT EXISTS idx_note_content_trgm
		 ON note.content USING gin ((coalesce(title, '') || ' ' || coalesce(content, '')) gin_trgm_ops);`,

		`CREATE INDEX IF NOT EXISTS idx_note_embedding_cosine
		 ON note.embedding USING hnsw (embedding vector_cosine_ops);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
