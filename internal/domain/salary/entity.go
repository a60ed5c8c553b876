package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// History is one append-only salary change record. A row is written every
// time an employee's salary changes, whether through a single increment or a
// bulk update.
type History struct {
	ID                  string
	EmployeeID          string
	CompanyID           string
	PreviousSalary      decimal.Decimal
	CurrentSalary       decimal.Decimal
	IncrementAmount     decimal.Decimal
	IncrementPercentage decimal.Decimal
	IncrementDate       time.Time
	Reason              *string
	CreatedAt           time.Time

	// Joined fields for responses
	EmployeeName *string
}

// Increment is the resolved arithmetic of one salary change.
type Increment struct {
	NewSalary  decimal.Decimal
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ResolveIncrement derives the full increment from whichever single input
// was supplied: a target salary, an absolute amount, or a percentage.
// A non-positive old salary short-circuits the percentage to zero.
func ResolveIncrement(old decimal.Decimal, newSalary, amount, percentage *decimal.Decimal) (Increment, error) {
	var inc Increment

	switch {
	case newSalary != nil:
		inc.NewSalary = *newSalary
		inc.Amount = newSalary.Sub(old)
	case amount != nil:
		inc.Amount = *amount
		inc.NewSalary = old.Add(*amount)
	case percentage != nil:
		inc.Amount = old.Mul(*percentage).Div(hundred)
		inc.NewSalary = old.Add(inc.Amount)
	default:
		return Increment{}, ErrNoIncrementInput
	}

	if old.IsPositive() {
		inc.Percentage = inc.Amount.Div(old).Mul(hundred)
	} else {
		inc.Percentage = decimal.Zero
	}

	if inc.NewSalary.IsNegative() {
		return Increment{}, ErrNegativeSalary
	}

	return inc, nil
}
