package absence

import "context"

// AbsenceService defines business logic for the absence workflow.
type AbsenceService interface {
	// RequestAbsence files a new PENDING absence report.
	RequestAbsence(ctx context.Context, req RequestAbsenceRequest) (AbsenceResponse, error)

	// GetMyAbsences lists the authenticated user's reports.
	GetMyAbsences(ctx context.Context, userID string, tenantID string) ([]AbsenceResponse, error)

	// ListAbsences lists the tenant's reports (admin only).
	ListAbsences(ctx context.Context, tenantID string, status *AbsenceStatus) ([]AbsenceResponse, error)

	// ApproveAbsence approves a pending report (admin only).
	ApproveAbsence(ctx context.Context, req ReviewAbsenceRequest) (AbsenceResponse, error)

	// RejectAbsence rejects a pending report (admin only).
	RejectAbsence(ctx context.Context, req ReviewAbsenceRequest) (AbsenceResponse, error)
}
