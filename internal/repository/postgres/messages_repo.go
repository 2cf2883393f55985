package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/farm-backend/internal/models"
)

type messagesRepo struct{ pool *pgxpool.Pool }

func (r *messagesRepo) Create(ctx context.Context, m models.Message) (models.Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO messages(id, room, sender_id, body)
		 VALUES($1,$2,$3,$4)
		 RETURNING created_at`,
		m.ID, m.Room, m.SenderID, m.Body,
	).Scan(&m.CreatedAt)
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

func (r *messagesRepo) ListByRoom(ctx context.Context, room, before string, limit int) ([]models.Message, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if before == "" {
		rows, err = r.pool.Query(ctx,
			`SELECT id, room, sender_id, body, created_at
			   FROM messages
			  WHERE room=$1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2`,
			room, limit,
		)
	} else {
		var (
			at time.Time
			id string
		)
		err = r.pool.QueryRow(ctx,
			`SELECT created_at, id FROM messages WHERE id=$1 AND room=$2`, before, room,
		).Scan(&at, &id)
		if err != nil {
			return nil, notFound(err)
		}
		// row comparison keeps messages sharing the cursor's timestamp
		rows, err = r.pool.Query(ctx,
			`SELECT id, room, sender_id, body, created_at
			   FROM messages
			  WHERE room=$1 AND (created_at, id) < ($2::timestamptz, $3::uuid)
			  ORDER BY created_at DESC, id DESC
			  LIMIT $4`,
			room, at, id, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Room, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
