package salary

import "errors"

var (
	ErrHistoryNotFound  = errors.New("salary history not found")
	ErrNoIncrementInput = errors.New("one of new_salary, increment_amount or increment_percentage is required")
	ErrNegativeSalary   = errors.New("resulting salary must not be negative")
)
