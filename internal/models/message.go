package models

import (
	"time"

	"github.com/baharkarakas/farm-backend/internal/validate"
)

const MaxMessageLen = 4000

type Message struct {
	ID        string    `json:"id"`
	Room      string    `json:"room"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) Validate() error {
	var errs validate.Errs
	errs = errs.Add(validate.Required("room", m.Room))
	errs = errs.Add(validate.MaxLen("room", m.Room, 64))
	errs = errs.Add(validate.Required("body", m.Body))
	errs = errs.Add(validate.MaxLen("body", m.Body, MaxMessageLen))
	return errs.Err()
}
