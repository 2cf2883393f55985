package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/farm-backend/internal/metrics"
	"github.com/baharkarakas/farm-backend/internal/models"
	repo "github.com/baharkarakas/farm-backend/internal/repository"
	"github.com/baharkarakas/farm-backend/internal/worker"
)

const auditWriteTimeout = 5 * time.Second

// AuditService writes the audit trail off the request path.
type AuditService struct {
	r  repo.AuditLogs
	wp *worker.Pool
}

func NewAuditService(r repo.AuditLogs, wp *worker.Pool) *AuditService {
	return &AuditService{r: r, wp: wp}
}

// Record queues an audit entry. Failures are logged, never returned.
func (s *AuditService) Record(actorID, entityType, entityID, action string, details map[string]any) {
	l := models.AuditLog{
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		ActorID:    actorID,
		Details:    details,
	}
	queued := s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := s.r.Create(ctx, l); err != nil {
			metrics.AuditWrites.WithLabelValues("failed").Inc()
			slog.Error("audit write", "err", err, "entity", entityType, "id", entityID, "action", action)
			return
		}
		metrics.AuditWrites.WithLabelValues("ok").Inc()
	})
	if !queued {
		metrics.AuditWrites.WithLabelValues("failed").Inc()
		slog.Warn("audit dropped, worker pool stopped", "entity", entityType, "id", entityID, "action", action)
	}
}

func (s *AuditService) List(ctx context.Context, limit, offset int) ([]models.AuditLog, error) {
	limit, offset = page(limit, offset)
	return s.r.List(ctx, limit, offset)
}
