package user

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	// CreateEmployee creates a user in the admin's tenant (admin only).
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error)

	// ListEmployees lists the tenant's users (admin only).
	ListEmployees(ctx context.Context, tenantID string) ([]UserResponse, error)

	// DeactivateEmployee marks a user inactive (admin only).
	DeactivateEmployee(ctx context.Context, tenantID string, userID string) error

	// SetHomeLocation stores an employee's home-office reference point
	// (admin only, coordinates already geocoded).
	SetHomeLocation(ctx context.Context, req SetHomeLocationRequest) (UserResponse, error)

	// GetProfile returns the authenticated user's profile.
	GetProfile(ctx context.Context, userID string) (UserResponse, error)

	// UpdateProfile updates the authenticated user's own profile.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)
}
