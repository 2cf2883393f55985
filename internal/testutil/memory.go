// Package testutil provides in-memory repositories for service and router
// tests, and a containerized Postgres for repository tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/farm-backend/internal/models"
	repo "github.com/baharkarakas/farm-backend/internal/repository"
)

// Store implements every repository interface over maps.
type Store struct {
	mu       sync.Mutex
	farms    map[string]models.Farm
	plans    map[string]models.Plan
	messages []models.Message
	audit    []models.AuditLog
	now      func() time.Time

	// FailWith, when set, is returned by every call.
	FailWith error
}

func NewStore() *Store {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int64
	return &Store{
		farms: map[string]models.Farm{},
		plans: map[string]models.Plan{},
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (s *Store) Farms() repo.Farms         { return farms{s} }
func (s *Store) Plans() repo.Plans         { return plans{s} }
func (s *Store) Messages() repo.Messages   { return messages{s} }
func (s *Store) AuditLogs() repo.AuditLogs { return audits{s} }

// AuditEntries returns a copy of the recorded audit log.
func (s *Store) AuditEntries() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditLog(nil), s.audit...)
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

type farms struct{ s *Store }

func (r farms) Create(_ context.Context, f models.Farm) (models.Farm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Farm{}, r.s.FailWith
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = r.s.now()
	f.UpdatedAt = f.CreatedAt
	r.s.farms[f.ID] = f
	return f, nil
}

func (r farms) GetByID(_ context.Context, id string) (models.Farm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Farm{}, r.s.FailWith
	}
	f, ok := r.s.farms[id]
	if !ok {
		return models.Farm{}, repo.ErrNotFound
	}
	return f, nil
}

func (r farms) List(_ context.Context, limit, offset int) ([]models.Farm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]models.Farm, 0, len(r.s.farms))
	for _, f := range r.s.farms {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, limit, offset), nil
}

func (r farms) Update(_ context.Context, f models.Farm) (models.Farm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Farm{}, r.s.FailWith
	}
	cur, ok := r.s.farms[f.ID]
	if !ok {
		return models.Farm{}, repo.ErrNotFound
	}
	cur.Name, cur.Location, cur.SizeHectares, cur.Crops = f.Name, f.Location, f.SizeHectares, f.Crops
	cur.UpdatedAt = r.s.now()
	r.s.farms[f.ID] = cur
	return cur, nil
}

func (r farms) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	if _, ok := r.s.farms[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.farms, id)
	for pid, p := range r.s.plans {
		if p.FarmID == id {
			delete(r.s.plans, pid)
		}
	}
	return nil
}

type plans struct{ s *Store }

func (r plans) Create(_ context.Context, p models.Plan) (models.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Plan{}, r.s.FailWith
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.plans[p.ID] = p
	return p, nil
}

func (r plans) GetByID(_ context.Context, farmID, id string) (models.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Plan{}, r.s.FailWith
	}
	p, ok := r.s.plans[id]
	if !ok || p.FarmID != farmID {
		return models.Plan{}, repo.ErrNotFound
	}
	return p, nil
}

func (r plans) ListByFarm(_ context.Context, farmID string, kind models.PlanKind) ([]models.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := []models.Plan{}
	for _, p := range r.s.plans {
		if p.FarmID == farmID && (kind == "" || p.Kind == kind) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r plans) Update(_ context.Context, p models.Plan) (models.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Plan{}, r.s.FailWith
	}
	cur, ok := r.s.plans[p.ID]
	if !ok || cur.FarmID != p.FarmID {
		return models.Plan{}, repo.ErrNotFound
	}
	cur.Kind, cur.Title, cur.Content = p.Kind, p.Title, p.Content
	cur.UpdatedAt = r.s.now()
	r.s.plans[p.ID] = cur
	return cur, nil
}

func (r plans) Delete(_ context.Context, farmID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	p, ok := r.s.plans[id]
	if !ok || p.FarmID != farmID {
		return repo.ErrNotFound
	}
	delete(r.s.plans, id)
	return nil
}

type messages struct{ s *Store }

func (r messages) Create(_ context.Context, m models.Message) (models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return models.Message{}, r.s.FailWith
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = r.s.now()
	r.s.messages = append(r.s.messages, m)
	return m, nil
}

func (r messages) ListByRoom(_ context.Context, room, before string, limit int) ([]models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	// messages are kept in insertion order, so older means a lower index
	end := len(r.s.messages)
	if before != "" {
		end = -1
		for i, m := range r.s.messages {
			if m.ID == before && m.Room == room {
				end = i
			}
		}
		if end < 0 {
			return nil, repo.ErrNotFound
		}
	}
	out := []models.Message{}
	for i := end - 1; i >= 0 && len(out) < limit; i-- {
		if m := r.s.messages[i]; m.Room == room {
			out = append(out, m)
		}
	}
	return out, nil
}

type audits struct{ s *Store }

func (r audits) Create(_ context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	l.ID = uuid.NewString()
	l.CreatedAt = r.s.now()
	r.s.audit = append(r.s.audit, l)
	return nil
}

func (r audits) List(_ context.Context, limit, offset int) ([]models.AuditLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]models.AuditLog, 0, len(r.s.audit))
	for i := len(r.s.audit) - 1; i >= 0; i-- {
		out = append(out, r.s.audit[i])
	}
	return window(out, limit, offset), nil
}
