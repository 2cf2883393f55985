package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/farm-backend/internal/repository"
)

type Repositories struct {
	Farms     repo.Farms
	Plans     repo.Plans
	Messages  repo.Messages
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Farms:     &farmsRepo{pool},
		Plans:     &plansRepo{pool},
		Messages:  &messagesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}

// notFound maps pgx.ErrNoRows, and uuid syntax errors on id lookups, to repo.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" { // invalid_text_representation
		return repo.ErrNotFound
	}
	return err
}

func affected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
