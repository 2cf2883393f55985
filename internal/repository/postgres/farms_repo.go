package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/farm-backend/internal/models"
)

type farmsRepo struct{ pool *pgxpool.Pool }

const farmCols = `id, owner_id, name, location, size_hectares, crops, created_at, updated_at`

func scanFarm(row pgx.Row) (models.Farm, error) {
	var f models.Farm
	err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Location, &f.SizeHectares, &f.Crops, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *farmsRepo) Create(ctx context.Context, f models.Farm) (models.Farm, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Crops == nil {
		f.Crops = []string{}
	}
	out, err := scanFarm(r.pool.QueryRow(ctx,
		`INSERT INTO farms(id, owner_id, name, location, size_hectares, crops)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+farmCols,
		f.ID, f.OwnerID, f.Name, f.Location, f.SizeHectares, f.Crops,
	))
	if err != nil {
		return models.Farm{}, fmt.Errorf("insert farm: %w", err)
	}
	return out, nil
}

func (r *farmsRepo) GetByID(ctx context.Context, id string) (models.Farm, error) {
	f, err := scanFarm(r.pool.QueryRow(ctx, `SELECT `+farmCols+` FROM farms WHERE id=$1`, id))
	if err != nil {
		return models.Farm{}, notFound(err)
	}
	return f, nil
}

func (r *farmsRepo) List(ctx context.Context, limit, offset int) ([]models.Farm, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+farmCols+` FROM farms ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer rows.Close()

	out := []models.Farm{}
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *farmsRepo) Update(ctx context.Context, f models.Farm) (models.Farm, error) {
	if f.Crops == nil {
		f.Crops = []string{}
	}
	out, err := scanFarm(r.pool.QueryRow(ctx,
		`UPDATE farms
		    SET name=$2, location=$3, size_hectares=$4, crops=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+farmCols,
		f.ID, f.Name, f.Location, f.SizeHectares, f.Crops,
	))
	if err != nil {
		return models.Farm{}, notFound(err)
	}
	return out, nil
}

func (r *farmsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM farms WHERE id=$1`, id)
	if err != nil {
		return notFound(err)
	}
	return affected(tag)
}
