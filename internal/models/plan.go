package models

import (
	"encoding/json"
	"time"

	"github.com/baharkarakas/farm-backend/internal/validate"
)

type PlanKind string

const (
	PlanBusiness PlanKind = "business"
	PlanMarket   PlanKind = "market"
)

func (k PlanKind) Valid() bool { return k == PlanBusiness || k == PlanMarket }

// Plan is a document from the business or market planning editor. Content is
// opaque to the backend and stored as a JSON object.
type Plan struct {
	ID        string          `json:"id"`
	FarmID    string          `json:"farm_id"`
	Kind      PlanKind        `json:"kind"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Plan) Validate() error {
	var errs validate.Errs
	if !p.Kind.Valid() {
		errs = append(errs, validate.ErrField{Field: "kind", Msg: "must be business or market"})
	}
	errs = errs.Add(validate.Required("title", p.Title))
	errs = errs.Add(validate.MaxLen("title", p.Title, 200))
	errs = errs.Add(validate.JSONObject("content", p.Content))
	if len(p.Content) == 0 {
		p.Content = json.RawMessage(`{}`)
	}
	return errs.Err()
}
