package models

import (
	"time"

	"github.com/baharkarakas/farm-backend/internal/validate"
)

type Farm struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	SizeHectares float64   `json:"size_hectares"`
	Crops        []string  `json:"crops"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *Farm) Validate() error {
	var errs validate.Errs
	errs = errs.Add(validate.Required("name", f.Name))
	errs = errs.Add(validate.MaxLen("name", f.Name, 200))
	errs = errs.Add(validate.MinFloat("size_hectares", f.SizeHectares, 0))
	if f.Crops == nil {
		f.Crops = []string{}
	}
	return errs.Err()
}
