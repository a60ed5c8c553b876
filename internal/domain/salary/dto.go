package salary

import (
	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/pkg/validator"
)

type AddIncrementRequest struct {
	EmployeeID          string           `json:"employee_id"`
	NewSalary           *decimal.Decimal `json:"new_salary,omitempty"`
	IncrementAmount     *decimal.Decimal `json:"increment_amount,omitempty"`
	IncrementPercentage *decimal.Decimal `json:"increment_percentage,omitempty"`
	EffectiveDate       *string          `json:"effective_date,omitempty"`
	Reason              *string          `json:"reason,omitempty"`
}

func (r *AddIncrementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.NewSalary == nil && r.IncrementAmount == nil && r.IncrementPercentage == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "new_salary",
			Message: "one of new_salary, increment_amount or increment_percentage is required",
		})
	}
	if r.NewSalary != nil && r.NewSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "new_salary", Message: "must not be negative"})
	}
	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkUpdateItem struct {
	EmployeeID string          `json:"employee_id"`
	NewSalary  decimal.Decimal `json:"new_salary"`
}

type BulkUpdateRequest struct {
	Items  []BulkUpdateItem `json:"items"`
	Reason *string          `json:"reason,omitempty"`
}

func (r *BulkUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one item is required"})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "every item requires an employee_id"})
			break
		}
		if item.NewSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "new_salary must not be negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkUpdateResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type HistoryResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeName        *string         `json:"employee_name,omitempty"`
	PreviousSalary      decimal.Decimal `json:"previous_salary"`
	CurrentSalary       decimal.Decimal `json:"current_salary"`
	IncrementAmount     decimal.Decimal `json:"increment_amount"`
	IncrementPercentage decimal.Decimal `json:"increment_percentage"`
	IncrementDate       string          `json:"increment_date"`
	Reason              *string         `json:"reason,omitempty"`
}

func ToHistoryResponse(h History) HistoryResponse {
	return HistoryResponse{
		ID:                  h.ID,
		EmployeeID:          h.EmployeeID,
		EmployeeName:        h.EmployeeName,
		PreviousSalary:      h.PreviousSalary,
		CurrentSalary:       h.CurrentSalary,
		IncrementAmount:     h.IncrementAmount,
		IncrementPercentage: h.IncrementPercentage,
		IncrementDate:       h.IncrementDate.Format("2006-01-02"),
		Reason:              h.Reason,
	}
}

type CompanyStatsResponse struct {
	EmployeeCount int64           `json:"employee_count"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	AverageSalary decimal.Decimal `json:"average_salary"`
	MinSalary     decimal.Decimal `json:"min_salary"`
	MaxSalary     decimal.Decimal `json:"max_salary"`

	LatestPayoutMonth int             `json:"latest_payout_month"`
	LatestPayoutYear  int             `json:"latest_payout_year"`
	LatestPayoutTotal decimal.Decimal `json:"latest_payout_total"`
}
