package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/farm-backend/internal/models"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

type Farms interface {
	Create(ctx context.Context, f models.Farm) (models.Farm, error)
	GetByID(ctx context.Context, id string) (models.Farm, error)
	List(ctx context.Context, limit, offset int) ([]models.Farm, error)
	Update(ctx context.Context, f models.Farm) (models.Farm, error)
	Delete(ctx context.Context, id string) error
}

type Plans interface {
	Create(ctx context.Context, p models.Plan) (models.Plan, error)
	GetByID(ctx context.Context, farmID, id string) (models.Plan, error)
	// ListByFarm filters by kind unless kind is empty.
	ListByFarm(ctx context.Context, farmID string, kind models.PlanKind) ([]models.Plan, error)
	Update(ctx context.Context, p models.Plan) (models.Plan, error)
	Delete(ctx context.Context, farmID, id string) error
}

type Messages interface {
	Create(ctx context.Context, m models.Message) (models.Message, error)
	// ListByRoom returns newest first. A non-empty before restricts to messages
	// ordered after the message with that id; ErrNotFound if it is not in room.
	ListByRoom(ctx context.Context, room, before string, limit int) ([]models.Message, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]models.AuditLog, error)
}
