package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrHRAccessRequired       = errors.New("hr access required")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrInsufficientPermission = errors.New("insufficient permission")
)
