package admin

import "errors"

var ErrAdminNotFound = errors.New("admin account not found")
