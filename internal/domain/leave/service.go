package leave

import "context"

// LeaveService defines leave application and approval flow.
type LeaveService interface {
	// Apply validates dates and balance, then files a pending request.
	// Balance is checked at application time only; approval does not
	// re-validate it.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	GetMyLeaves(ctx context.Context) ([]LeaveResponse, error)

	// GetPendingApprovals lists pending requests routed to the
	// authenticated employee as manager.
	GetPendingApprovals(ctx context.Context) ([]LeaveResponse, error)

	GetCompanyLeaves(ctx context.Context) ([]LeaveResponse, error)

	// UpdateStatus moves a pending request to approved or rejected. Both
	// outcomes are terminal. Only the leave's manager or the owning
	// company may act.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveResponse, error)

	CreatePolicy(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	ListPolicies(ctx context.Context) ([]PolicyResponse, error)
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
}
