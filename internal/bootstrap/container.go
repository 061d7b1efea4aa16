package bootstrap

import (
	"log"

	"semantic-notes-be/internal/config"
	"semantic-notes-be/internal/controller"
	"semantic-notes-be/internal/pkg/logger"
	"semantic-notes-be/internal/repository/facade"
	"semantic-notes-be/internal/repository/unitofwork"
	"semantic-notes-be/internal/service"
	"semantic-notes-be/pkg/embedding"

	pktNats "semantic-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding Provider
	var embeddingProvider embedding.EmbeddingProvider
	model := cfg.Ai.EmbeddingModel
	if cfg.Ai.EmbeddingProvider == "ollama" {
		if model == "" {
			model = "nomic-embed-text"
		}
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, model)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", model)
	} else {
		if model == "" {
			model = "text-embedding-004"
		}
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, model)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", model)
	}
	generator := embedding.NewGenerator(embeddingProvider, model)

	// Repositories
	uowFactory := unitofwork.NewRepositoryFactory(db, generator)
	noteRepository := facade.NewNoteRepository(db, uowFactory, generator)

	// NATS (auxiliary: notification events keep flowing when it is up,
	// the API works without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	publisherService := service.NewPublisherService(cfg.Keys.EmbedNoteTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedNoteTopic,
		uowFactory,
		sysLogger,
	)

	noteService := service.NewNoteService(
		noteRepository,
		publisherService,
		natsPub,
		sysLogger,
	)

	return &Container{
		NoteController:  controller.NewNoteController(noteService),
		ConsumerService: consumerService,
	}
}
