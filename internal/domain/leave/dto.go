package leave

import "github.com/staffline/staffline-backend-go/internal/pkg/validator"

type CreatePolicyRequest struct {
	Name                string `json:"name"`
	AnnualAllowanceDays int    `json:"annual_allowance_days"`
	IsPaid              *bool  `json:"is_paid,omitempty"`
}

func (r *CreatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.AnnualAllowanceDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_allowance_days", Message: "must be a positive number of days"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePolicyRequest struct {
	ID                  string  `json:"-"`
	Name                *string `json:"name,omitempty"`
	AnnualAllowanceDays *int    `json:"annual_allowance_days,omitempty"`
	IsPaid              *bool   `json:"is_paid,omitempty"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.AnnualAllowanceDays != nil && *r.AnnualAllowanceDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_allowance_days", Message: "must be a positive number of days"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	AnnualAllowanceDays int    `json:"annual_allowance_days"`
	IsPaid              bool   `json:"is_paid"`
	IsActive            bool   `json:"is_active"`
}

type ApplyLeaveRequest struct {
	LeavePolicyID string `json:"leave_policy_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeavePolicyID) {
		errs = append(errs, validator.ValidationError{Field: "leave_policy_id", Message: "leave_policy_id is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be 'approved' or 'rejected'",
		}}
	}
	return nil
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeavePolicyID string  `json:"leave_policy_id"`
	PolicyName    *string `json:"policy_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          int     `json:"days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ManagerID     *string `json:"manager_id,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
}

func ToResponse(l Leave) LeaveResponse {
	var approvedAt *string
	if l.ApprovedAt != nil {
		str := l.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &str
	}

	return LeaveResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeName,
		LeavePolicyID: l.LeavePolicyID,
		PolicyName:    l.PolicyName,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Days:          l.Days,
		Reason:        l.Reason,
		Status:        string(l.Status),
		ManagerID:     l.ManagerID,
		ApprovedAt:    approvedAt,
	}
}
