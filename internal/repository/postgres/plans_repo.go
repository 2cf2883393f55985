package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/farm-backend/internal/models"
)

type plansRepo struct{ pool *pgxpool.Pool }

const planCols = `id, farm_id, kind, title, content, created_by, created_at, updated_at`

func scanPlan(row pgx.Row) (models.Plan, error) {
	var p models.Plan
	var content []byte
	err := row.Scan(&p.ID, &p.FarmID, &p.Kind, &p.Title, &content, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	p.Content = content
	return p, err
}

func (r *plansRepo) Create(ctx context.Context, p models.Plan) (models.Plan, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	out, err := scanPlan(r.pool.QueryRow(ctx,
		`INSERT INTO plans(id, farm_id, kind, title, content, created_by)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+planCols,
		p.ID, p.FarmID, p.Kind, p.Title, []byte(p.Content), p.CreatedBy,
	))
	if err != nil {
		return models.Plan{}, fmt.Errorf("insert plan: %w", err)
	}
	return out, nil
}

func (r *plansRepo) GetByID(ctx context.Context, farmID, id string) (models.Plan, error) {
	p, err := scanPlan(r.pool.QueryRow(ctx,
		`SELECT `+planCols+` FROM plans WHERE farm_id=$1 AND id=$2`, farmID, id))
	if err != nil {
		return models.Plan{}, notFound(err)
	}
	return p, nil
}

func (r *plansRepo) ListByFarm(ctx context.Context, farmID string, kind models.PlanKind) ([]models.Plan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+planCols+`
		   FROM plans
		  WHERE farm_id=$1 AND ($2::text = '' OR kind=$2::text)
		  ORDER BY updated_at DESC`,
		farmID, string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", notFound(err))
	}
	defer rows.Close()

	out := []models.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *plansRepo) Update(ctx context.Context, p models.Plan) (models.Plan, error) {
	out, err := scanPlan(r.pool.QueryRow(ctx,
		`UPDATE plans
		    SET kind=$3, title=$4, content=$5, updated_at=now()
		  WHERE farm_id=$1 AND id=$2
		  RETURNING `+planCols,
		p.FarmID, p.ID, p.Kind, p.Title, []byte(p.Content),
	))
	if err != nil {
		return models.Plan{}, notFound(err)
	}
	return out, nil
}

func (r *plansRepo) Delete(ctx context.Context, farmID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plans WHERE farm_id=$1 AND id=$2`, farmID, id)
	if err != nil {
		return notFound(err)
	}
	return affected(tag)
}
