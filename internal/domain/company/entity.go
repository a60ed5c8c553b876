package company

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Company struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Address      *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
