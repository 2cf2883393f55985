package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/farm-backend/internal/auth"
	"github.com/baharkarakas/farm-backend/internal/models"
	repo "github.com/baharkarakas/farm-backend/internal/repository"
)

type FarmService struct {
	r     repo.Farms
	audit *AuditService
}

func NewFarmService(r repo.Farms, audit *AuditService) *FarmService {
	return &FarmService{r: r, audit: audit}
}

func (s *FarmService) List(ctx context.Context, limit, offset int) ([]models.Farm, error) {
	limit, offset = page(limit, offset)
	return s.r.List(ctx, limit, offset)
}

func (s *FarmService) Get(ctx context.Context, id string) (models.Farm, error) {
	return s.r.GetByID(ctx, id)
}

// Create stores f owned by the caller.
func (s *FarmService) Create(ctx context.Context, actor auth.User, f models.Farm) (models.Farm, error) {
	f.ID = ""
	f.OwnerID = actor.ID
	f.Name = strings.TrimSpace(f.Name)
	if err := f.Validate(); err != nil {
		return models.Farm{}, err
	}
	out, err := s.r.Create(ctx, f)
	if err != nil {
		return models.Farm{}, err
	}
	s.audit.Record(actor.ID, "farm", out.ID, "created", map[string]any{"name": out.Name})
	return out, nil
}

func (s *FarmService) Update(ctx context.Context, actor auth.User, id string, f models.Farm) (models.Farm, error) {
	f.ID = id
	f.Name = strings.TrimSpace(f.Name)
	if err := f.Validate(); err != nil {
		return models.Farm{}, err
	}
	out, err := s.r.Update(ctx, f)
	if err != nil {
		return models.Farm{}, err
	}
	s.audit.Record(actor.ID, "farm", out.ID, "updated", nil)
	return out, nil
}

func (s *FarmService) Delete(ctx context.Context, actor auth.User, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(actor.ID, "farm", id, "deleted", nil)
	return nil
}
