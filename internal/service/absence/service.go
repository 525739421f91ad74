package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/absence"
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
}

func NewAbsenceService(absenceRepository absence.AbsenceRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{
		AbsenceRepository: absenceRepository,
	}
}

// RequestAbsence implements absence.AbsenceService.
func (a *AbsenceServiceImpl) RequestAbsence(ctx context.Context, req absence.RequestAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if startDate.After(endDate) {
		return absence.AbsenceResponse{}, absence.ErrInvalidDateRange
	}

	created, err := a.AbsenceRepository.Create(ctx, absence.AbsenceReport{
		UserID:      req.UserID,
		TenantID:    req.TenantID,
		Type:        req.Type,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
		Status:      absence.StatusPending,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence report: %w", err)
	}

	return mapReportToResponse(created), nil
}

// GetMyAbsences implements absence.AbsenceService.
func (a *AbsenceServiceImpl) GetMyAbsences(ctx context.Context, userID string, tenantID string) ([]absence.AbsenceResponse, error) {
	reports, err := a.AbsenceRepository.ListByUser(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence reports: %w", err)
	}

	return mapReportsToResponses(reports), nil
}

// ListAbsences implements absence.AbsenceService.
func (a *AbsenceServiceImpl) ListAbsences(ctx context.Context, tenantID string, status *absence.AbsenceStatus) ([]absence.AbsenceResponse, error) {
	reports, err := a.AbsenceRepository.ListByTenant(ctx, tenantID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence reports: %w", err)
	}

	return mapReportsToResponses(reports), nil
}

// ApproveAbsence implements absence.AbsenceService.
func (a *AbsenceServiceImpl) ApproveAbsence(ctx context.Context, req absence.ReviewAbsenceRequest) (absence.AbsenceResponse, error) {
	return a.reviewAbsence(ctx, req, absence.StatusApproved)
}

// RejectAbsence implements absence.AbsenceService.
func (a *AbsenceServiceImpl) RejectAbsence(ctx context.Context, req absence.ReviewAbsenceRequest) (absence.AbsenceResponse, error) {
	return a.reviewAbsence(ctx, req, absence.StatusRejected)
}

func (a *AbsenceServiceImpl) reviewAbsence(ctx context.Context, req absence.ReviewAbsenceRequest, status absence.AbsenceStatus) (absence.AbsenceResponse, error) {
	report, err := a.AbsenceRepository.GetByID(ctx, req.ID, req.TenantID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	// Review decisions are final.
	if report.Status != absence.StatusPending {
		return absence.AbsenceResponse{}, absence.ErrAbsenceAlreadyProcessed
	}

	now := time.Now().UTC()
	report.Status = status
	report.ReviewedBy = &req.ReviewerID
	report.ReviewedAt = &now

	if err := a.AbsenceRepository.UpdateStatus(ctx, report); err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to update absence status: %w", err)
	}

	return mapReportToResponse(report), nil
}

func mapReportsToResponses(reports []absence.AbsenceReport) []absence.AbsenceResponse {
	responses := make([]absence.AbsenceResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, mapReportToResponse(report))
	}
	return responses
}

func mapReportToResponse(report absence.AbsenceReport) absence.AbsenceResponse {
	resp := absence.AbsenceResponse{
		ID:          report.ID,
		UserID:      report.UserID,
		UserName:    report.UserName,
		Type:        report.Type,
		StartDate:   report.StartDate.Format("2006-01-02"),
		EndDate:     report.EndDate.Format("2006-01-02"),
		Description: report.Description,
		Status:      report.Status,
		ReviewedBy:  report.ReviewedBy,
		CreatedAt:   report.CreatedAt.UTC().Format(time.RFC3339),
	}
	if report.ReviewedAt != nil {
		reviewedAt := report.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
