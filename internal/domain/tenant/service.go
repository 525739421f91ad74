package tenant

import "context"

// TenantService defines business logic for tenant settings.
type TenantService interface {
	// GetSettings returns the tenant configuration including the office
	// geofence (admin only).
	GetSettings(ctx context.Context, tenantID string) (TenantSettingsResponse, error)

	// UpdateOfficeLocation updates the office geofence (admin only).
	UpdateOfficeLocation(ctx context.Context, tenantID string, req UpdateOfficeLocationRequest) (TenantSettingsResponse, error)
}
