package absence

import "context"

// AbsenceRepository defines data access for absence reports. All methods are
// tenant-scoped to prevent cross-tenant access.
type AbsenceRepository interface {
	// Create creates a new absence report.
	Create(ctx context.Context, report AbsenceReport) (AbsenceReport, error)

	// GetByID retrieves an absence report with tenant isolation.
	GetByID(ctx context.Context, id string, tenantID string) (AbsenceReport, error)

	// ListByUser retrieves a user's reports, newest first.
	ListByUser(ctx context.Context, userID string, tenantID string) ([]AbsenceReport, error)

	// ListByTenant retrieves a tenant's reports, optionally filtered by
	// status, newest first.
	ListByTenant(ctx context.Context, tenantID string, status *AbsenceStatus) ([]AbsenceReport, error)

	// UpdateStatus transitions a report to APPROVED or REJECTED.
	UpdateStatus(ctx context.Context, report AbsenceReport) error
}
