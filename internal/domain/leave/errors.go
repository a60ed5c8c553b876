package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrPolicyNotFound       = errors.New("leave policy not found")
	ErrPolicyInactive       = errors.New("leave policy is disabled")
	ErrInsufficientBalance  = errors.New("insufficient leave balance for this policy")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrNotAuthorizedToAct   = errors.New("not authorized to act on this leave request")
	ErrInvalidDateRange     = errors.New("end date must not precede start date")
	ErrOverlappingLeave     = errors.New("an overlapping leave request already exists")
	ErrPolicyNameExists     = errors.New("leave policy with this name already exists")
	ErrInvalidStatusRequest = errors.New("status must be 'approved' or 'rejected'")
)
