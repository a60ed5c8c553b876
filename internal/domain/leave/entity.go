package leave

import "time"

// Policy is a company's leave type: an annual day allowance plus a paid flag.
type Policy struct {
	ID                  string
	CompanyID           string
	Name                string
	AnnualAllowanceDays int
	IsPaid              bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// Leave is an employee's leave request. Approved and rejected are terminal.
type Leave struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	LeavePolicyID string
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Reason        string
	Status        LeaveStatus
	ManagerID     *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields for responses
	EmployeeName *string
	PolicyName   *string
	PolicyIsPaid *bool
}

// DaysBetweenInclusive counts calendar days from start to end, both ends
// included. Returns 0 when end precedes start.
func DaysBetweenInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
