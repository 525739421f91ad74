package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/absence"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepository) Create(ctx context.Context, report absence.AbsenceReport) (absence.AbsenceReport, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return absence.AbsenceReport{}, fmt.Errorf("failed to generate absence id: %w", err)
	}
	report.ID = id.String()

	query := `
		INSERT INTO absence_reports (id, user_id, tenant_id, type, start_date, end_date, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		report.ID, report.UserID, report.TenantID, report.Type,
		report.StartDate, report.EndDate, report.Description, report.Status,
	).Scan(&report.CreatedAt, &report.UpdatedAt)

	if err != nil {
		return absence.AbsenceReport{}, fmt.Errorf("failed to create absence report: %w", err)
	}

	return report, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepository) GetByID(ctx context.Context, id string, tenantID string) (absence.AbsenceReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.tenant_id, a.type, a.start_date, a.end_date,
			   a.description, a.status, a.reviewed_by, a.reviewed_at,
			   a.created_at, a.updated_at, u.full_name AS user_name
		FROM absence_reports a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1 AND a.tenant_id = $2
	`

	report, err := scanAbsence(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceReport{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceReport{}, fmt.Errorf("failed to get absence report: %w", err)
	}

	return report, nil
}

// ListByUser implements absence.AbsenceRepository.
func (r *absenceRepository) ListByUser(ctx context.Context, userID string, tenantID string) ([]absence.AbsenceReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.tenant_id, a.type, a.start_date, a.end_date,
			   a.description, a.status, a.reviewed_by, a.reviewed_at,
			   a.created_at, a.updated_at, u.full_name AS user_name
		FROM absence_reports a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1 AND a.tenant_id = $2
		ORDER BY a.created_at DESC
	`

	return r.queryAbsences(ctx, q, query, userID, tenantID)
}

// ListByTenant implements absence.AbsenceRepository.
func (r *absenceRepository) ListByTenant(ctx context.Context, tenantID string, status *absence.AbsenceStatus) ([]absence.AbsenceReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.tenant_id, a.type, a.start_date, a.end_date,
			   a.description, a.status, a.reviewed_by, a.reviewed_at,
			   a.created_at, a.updated_at, u.full_name AS user_name
		FROM absence_reports a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.tenant_id = $1
	`
	args := []interface{}{tenantID}

	if status != nil {
		query += " AND a.status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY a.created_at DESC"

	return r.queryAbsences(ctx, q, query, args...)
}

// UpdateStatus implements absence.AbsenceRepository.
func (r *absenceRepository) UpdateStatus(ctx context.Context, report absence.AbsenceReport) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_reports
		SET status = $3, reviewed_by = $4, reviewed_at = $5, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
	`

	tag, err := q.Exec(ctx, query,
		report.ID, report.TenantID, report.Status, report.ReviewedBy, report.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update absence status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}

	return nil
}

func (r *absenceRepository) queryAbsences(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]absence.AbsenceReport, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence reports: %w", err)
	}
	defer rows.Close()

	reports := make([]absence.AbsenceReport, 0)
	for rows.Next() {
		report, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read absence reports: %w", err)
	}

	return reports, nil
}

func scanAbsence(row rowScanner) (absence.AbsenceReport, error) {
	var report absence.AbsenceReport
	err := row.Scan(
		&report.ID, &report.UserID, &report.TenantID, &report.Type,
		&report.StartDate, &report.EndDate, &report.Description, &report.Status,
		&report.ReviewedBy, &report.ReviewedAt, &report.CreatedAt, &report.UpdatedAt,
		&report.UserName,
	)
	if err != nil {
		return absence.AbsenceReport{}, err
	}
	return report, nil
}
