package service

import (
	"context"
	"encoding/json"
	"time"

	"semantic-notes-be/internal/dto"
	"semantic-notes-be/internal/entity"
	"semantic-notes-be/internal/pkg/logger"
	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/pkg/events"
	"semantic-notes-be/pkg/field"
	pktNats "semantic-notes-be/pkg/nats"
)

type INoteService interface {
	Create(ctx context.Context, userCtx dto.UserContext, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userCtx dto.UserContext, id int64) (*dto.NoteResponse, error)
	Update(ctx context.Context, userCtx dto.UserContext, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userCtx dto.UserContext, id int64) error
	Search(ctx context.Context, userCtx dto.UserContext, req *dto.SearchNotesRequest) (*dto.SearchNotesResponse, error)
}

type noteService struct {
	noteRepository   contract.NoteRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewNoteService(
	noteRepository contract.NoteRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		noteRepository:   noteRepository,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *noteService) Create(ctx context.Context, userCtx dto.UserContext, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	permissions := make([]entity.NotePermission, 0, len(req.Roles))
	for _, role := range req.Roles {
		permissions = append(permissions, entity.NotePermission{
			RoleId: field.Of(role.RoleId),
		})
	}

	note := entity.Note{
		Title:       field.FromPtr(req.Title),
		Content:     field.FromPtr(req.Content),
		AuthorId:    field.Of(userCtx.UserId),
		UpdatedAt:   field.Of(time.Now()),
		Permissions: field.Of(permissions),
	}

	created, err := s.noteRepository.Insert(ctx, note)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NoteEvent(events.TypeNoteCreated, created.Id.OrZero(), userCtx.UserId)
		// Notification delivery is auxiliary; a bus outage never fails
		// the request.
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("NoteService", "Failed to publish NOTE_CREATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	res := toNoteResponse(created)
	return &res, nil
}

func (s *noteService) Show(ctx context.Context, userCtx dto.UserContext, id int64) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.SelectById(ctx, id, userCtx)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	res := toNoteResponse(*note)
	return &res, nil
}

func (s *noteService) Update(ctx context.Context, userCtx dto.UserContext, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note := entity.Note{
		Id:        field.Of(req.Id),
		Title:     field.FromPtr(req.Title),
		Content:   field.FromPtr(req.Content),
		UpdatedAt: field.Of(time.Now()),
	}

	updated, err := s.noteRepository.Update(ctx, note, userCtx)
	if err != nil {
		return nil, err
	}

	// Content changed, so the stored embedding is stale; the consumer
	// regenerates it off the request path.
	payload, err := json.Marshal(dto.PublishEmbedNoteMessage{NoteId: req.Id})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, err
	}

	res := toNoteResponse(updated)
	return &res, nil
}

func (s *noteService) Delete(ctx context.Context, userCtx dto.UserContext, id int64) error {
	if _, err := s.noteRepository.Delete(ctx, id, userCtx); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NoteEvent(events.TypeNoteDeleted, id, userCtx.UserId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("NoteService", "Failed to publish NOTE_DELETED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func (s *noteService) Search(ctx context.Context, userCtx dto.UserContext, req *dto.SearchNotesRequest) (*dto.SearchNotesResponse, error) {
	pagination := dto.Pagination{Limit: req.Limit, Offset: req.Offset}
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}

	notes, err := s.noteRepository.SearchNotes(ctx, contract.SearchType(req.Type), req.Query, userCtx, pagination)
	if err != nil {
		return nil, err
	}

	res := dto.SearchNotesResponse{Notes: make([]dto.NoteResponse, 0, len(notes))}
	for _, note := range notes {
		res.Notes = append(res.Notes, toNoteResponse(note))
	}
	return &res, nil
}

func toNoteResponse(note entity.Note) dto.NoteResponse {
	res := dto.NoteResponse{
		Id: note.Id.OrZero(),
	}
	if title, ok := note.Title.Get(); ok {
		res.Title = &title
	}
	if content, ok := note.Content.Get(); ok {
		res.Content = &content
	}
	if authorId, ok := note.AuthorId.Get(); ok {
		res.AuthorId = &authorId
	}
	if updatedAt, ok := note.UpdatedAt.Get(); ok {
		res.UpdatedAt = &updatedAt
	}
	for _, emb := range note.Embeddings.OrZero() {
		res.Embeddings = append(res.Embeddings, dto.NoteEmbeddingDto{
			NoteId: emb.NoteId,
			Model:  emb.Model.OrZero(),
		})
	}
	for _, perm := range note.Permissions.OrZero() {
		res.Permissions = append(res.Permissions, dto.NotePermissionDto{
			RoleId: perm.RoleId.OrZero(),
		})
	}
	return res
}
