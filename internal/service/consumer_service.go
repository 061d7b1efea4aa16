package service

import (
	"context"
	"encoding/json"
	"errors"

	"semantic-notes-be/internal/dto"
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/pkg/logger"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/internal/repository/unitofwork"
	"semantic-notes-be/pkg/field"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService re-embeds notes off the request path. Updates publish
// the note id; this worker regenerates the (note_id, model) embedding
// row from the current content.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedNoteMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	cs.logger.Info("ConsumerService", "Re-embedding note", map[string]interface{}{"note_id": payload.NoteId})

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.ContentRepository().SelectById(ctx, payload.NoteId)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load note", map[string]interface{}{"note_id": payload.NoteId, "error": err.Error()})
		msg.Nack()
		return
	}
	if note == nil {
		// Deleted between publish and consume.
		cs.logger.Warn("ConsumerService", "Note gone, skipping re-embed", map[string]interface{}{"note_id": payload.NoteId})
		msg.Ack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("ConsumerService", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	embRepo := uow.EmbeddingRepository()

	staleWhere := entity.NoteEmbedding{
		NoteId: payload.NoteId,
		Model:  field.Of(embRepo.Generator().ModelName()),
	}
	if _, err := embRepo.Delete(ctx, staleWhere); err != nil && !errors.Is(err, contract.ErrWriteFailed) {
		cs.logger.Error("ConsumerService", "Failed to delete stale embedding", map[string]interface{}{"note_id": payload.NoteId, "error": err.Error()})
		msg.Nack()
		return
	}

	if note.Content.OrZero() != "" {
		if _, err := embRepo.CreateFromContent(ctx, payload.NoteId, note.Title.OrZero(), note.Content.OrZero()); err != nil {
			cs.logger.Error("ConsumerService", "Failed to regenerate embedding", map[string]interface{}{"note_id": payload.NoteId, "error": err.Error()})
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("ConsumerService", "Failed to commit transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Note re-embedded", map[string]interface{}{"note_id": payload.NoteId})
	msg.Ack()
}
