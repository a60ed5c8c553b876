package payroll

import "errors"

var (
	ErrPayoutNotFound    = errors.New("payout not found")
	ErrPayoutAlreadyPaid = errors.New("payout already marked as paid")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
)
