package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered in this tenant")
	ErrUserInactive           = errors.New("user account is deactivated")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
