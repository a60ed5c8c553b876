package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrEmailExists     = errors.New("company with this email already exists")
	ErrCompanyInactive = errors.New("company account is inactive")
)
