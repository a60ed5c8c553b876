package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee belongs to one company. Department and Designation are free-text
// names, not foreign keys. Salary is only ever changed through the salary
// history path.
type Employee struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Department   string
	Designation  string
	Salary       decimal.Decimal
	JoinDate     time.Time
	ManagerID    *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
