package user

import "context"

// UserRepository defines data access for users. All tenant-scoped methods
// take tenantID to prevent cross-tenant access.
type UserRepository interface {
	// Create creates a new user within a tenant.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email across tenants (login).
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByTenant retrieves active and inactive users of a tenant.
	ListByTenant(ctx context.Context, tenantID string) ([]User, error)

	// Update persists profile fields (name, password hash, home location,
	// active flag).
	Update(ctx context.Context, u User) error
}
