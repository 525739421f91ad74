package tenant

import "context"

// TenantRepository defines data access for tenants. The clock-event flow only
// reads the geofence configuration; updates come from the settings screen.
type TenantRepository interface {
	// GetByID retrieves a tenant by ID.
	GetByID(ctx context.Context, id string) (Tenant, error)

	// UpdateOfficeLocation sets the office geofence configuration.
	UpdateOfficeLocation(ctx context.Context, id string, req UpdateOfficeLocationRequest) error
}
