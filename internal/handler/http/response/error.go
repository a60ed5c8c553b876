package response

import (
	"errors"
	"net/http"

	"github.com/staffline/staffline-backend-go/internal/domain/admin"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/domain/auth"
	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/domain/master/department"
	"github.com/staffline/staffline-backend-go/internal/domain/master/designation"
	"github.com/staffline/staffline-backend-go/internal/domain/payroll"
	"github.com/staffline/staffline-backend-go/internal/domain/salary"
	"github.com/staffline/staffline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped falls
// through to a generic 500 so internal error text never reaches clients.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, err.Error())

	// Company / admin domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, company.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, company.ErrCompanyInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, err.Error())

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, designation.ErrDesignationNameExists):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrPolicyNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrHolidayNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrHolidayExists):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrPolicyNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrPolicyInactive):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrNotAuthorizedToAct):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrPolicyNameExists):
		Conflict(w, err.Error())

	// Salary domain errors
	case errors.Is(err, salary.ErrHistoryNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, salary.ErrNoIncrementInput):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, salary.ErrNegativeSalary):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayoutNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, payroll.ErrPayoutAlreadyPaid):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
