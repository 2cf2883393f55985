package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/baharkarakas/farm-backend/internal/auth"
	"github.com/baharkarakas/farm-backend/internal/models"
	repo "github.com/baharkarakas/farm-backend/internal/repository"
	"github.com/baharkarakas/farm-backend/internal/validate"
)

type ChatService struct {
	r     repo.Messages
	audit *AuditService
}

func NewChatService(r repo.Messages, audit *AuditService) *ChatService {
	return &ChatService{r: r, audit: audit}
}

// History returns up to limit messages of room, newest first, optionally
// older than the message id before.
func (s *ChatService) History(ctx context.Context, room, before string, limit int) ([]models.Message, error) {
	if before != "" {
		if _, err := uuid.Parse(before); err != nil {
			return nil, validate.Errs{{Field: "before", Msg: "must be a message id"}}
		}
	}
	limit, _ = page(limit, 0)
	msgs, err := s.r.ListByRoom(ctx, room, before, limit)
	if before != "" && errors.Is(err, repo.ErrNotFound) {
		return nil, validate.Errs{{Field: "before", Msg: "unknown message"}}
	}
	return msgs, err
}

func (s *ChatService) Post(ctx context.Context, actor auth.User, room, body string) (models.Message, error) {
	m := models.Message{
		Room:     strings.TrimSpace(room),
		SenderID: actor.ID,
		Body:     strings.TrimSpace(body),
	}
	if err := m.Validate(); err != nil {
		return models.Message{}, err
	}
	out, err := s.r.Create(ctx, m)
	if err != nil {
		return models.Message{}, err
	}
	s.audit.Record(actor.ID, "message", out.ID, "posted", map[string]any{"room": out.Room})
	return out, nil
}
