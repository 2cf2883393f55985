package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/farm-backend/internal/auth"
	"github.com/baharkarakas/farm-backend/internal/models"
	repo "github.com/baharkarakas/farm-backend/internal/repository"
	"github.com/baharkarakas/farm-backend/internal/validate"
)

// PlanService backs the business and market planning editors.
type PlanService struct {
	r     repo.Plans
	farms repo.Farms
	audit *AuditService
}

func NewPlanService(r repo.Plans, farms repo.Farms, audit *AuditService) *PlanService {
	return &PlanService{r: r, farms: farms, audit: audit}
}

func (s *PlanService) farmExists(ctx context.Context, farmID string) error {
	_, err := s.farms.GetByID(ctx, farmID)
	return err
}

func (s *PlanService) List(ctx context.Context, farmID string, kind models.PlanKind) ([]models.Plan, error) {
	if kind != "" && !kind.Valid() {
		return nil, validate.Errs{{Field: "kind", Msg: "must be business or market"}}
	}
	if err := s.farmExists(ctx, farmID); err != nil {
		return nil, err
	}
	return s.r.ListByFarm(ctx, farmID, kind)
}

func (s *PlanService) Get(ctx context.Context, farmID, id string) (models.Plan, error) {
	return s.r.GetByID(ctx, farmID, id)
}

func (s *PlanService) Create(ctx context.Context, actor auth.User, farmID string, p models.Plan) (models.Plan, error) {
	p.ID = ""
	p.FarmID = farmID
	p.CreatedBy = actor.ID
	p.Title = strings.TrimSpace(p.Title)
	if err := p.Validate(); err != nil {
		return models.Plan{}, err
	}
	if err := s.farmExists(ctx, farmID); err != nil {
		return models.Plan{}, err
	}
	out, err := s.r.Create(ctx, p)
	if err != nil {
		return models.Plan{}, err
	}
	s.audit.Record(actor.ID, "plan", out.ID, "created", map[string]any{"farm_id": farmID, "kind": string(out.Kind)})
	return out, nil
}

func (s *PlanService) Update(ctx context.Context, actor auth.User, farmID, id string, p models.Plan) (models.Plan, error) {
	p.ID = id
	p.FarmID = farmID
	p.Title = strings.TrimSpace(p.Title)
	if err := p.Validate(); err != nil {
		return models.Plan{}, err
	}
	out, err := s.r.Update(ctx, p)
	if err != nil {
		return models.Plan{}, err
	}
	s.audit.Record(actor.ID, "plan", out.ID, "updated", map[string]any{"farm_id": farmID})
	return out, nil
}

func (s *PlanService) Delete(ctx context.Context, actor auth.User, farmID, id string) error {
	if err := s.r.Delete(ctx, farmID, id); err != nil {
		return err
	}
	s.audit.Record(actor.ID, "plan", id, "deleted", map[string]any{"farm_id": farmID})
	return nil
}
