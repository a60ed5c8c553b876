package attendance

import "errors"

var (
	// Clock in/out errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")

	// General errors
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrPolicyNotFound  = errors.New("attendance policy not configured for this company")
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday is already registered on this date")
)
