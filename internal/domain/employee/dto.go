package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	Phone       *string         `json:"phone,omitempty"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	Salary      decimal.Decimal `json:"salary"`
	JoinDate    string          `json:"join_date"`
	ManagerID   *string         `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date is required"})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest deliberately has no salary field: salary changes go
// through the salary increment path so every change leaves a history row.
type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       *string         `json:"phone,omitempty"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	Salary      decimal.Decimal `json:"salary"`
	JoinDate    string          `json:"join_date"`
	ManagerID   *string         `json:"manager_id,omitempty"`
	Status      string          `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		Designation: e.Designation,
		Salary:      e.Salary,
		JoinDate:    e.JoinDate.Format("2006-01-02"),
		ManagerID:   e.ManagerID,
		Status:      string(e.Status),
	}
}
