package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	// UUIDv7 ids are time-ordered, so "id DESC" doubles as insertion order
	// when timestamps collide.
	id, err := uuid.NewV7()
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to generate entry id: %w", err)
	}
	entry.ID = id.String()

	var lat, lng *float64
	if entry.Location != nil {
		lat, lng = &entry.Location.Lat, &entry.Location.Lng
	}

	query := `
		INSERT INTO time_entries (
			id, user_id, tenant_id, type, mode, timestamp,
			location_lat, location_lng, is_verified, note, ip_address
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.TenantID,
		entry.Type,
		entry.Mode,
		entry.Timestamp,
		lat,
		lng,
		entry.IsVerified,
		entry.Note,
		entry.IPAddress,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetLastByUser implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetLastByUser(ctx context.Context, userID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, tenant_id, type, mode, timestamp,
			   location_lat, location_lng, is_verified, note, ip_address, created_at
		FROM time_entries
		WHERE user_id = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, userID))
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	return entry, nil
}

// ListByUserInRange implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, tenant_id, type, mode, timestamp,
			   location_lat, location_lng, is_verified, note, ip_address, created_at
		FROM time_entries
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp <= $3
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timeentry.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time entries: %w", err)
	}

	return entries, nil
}

// ListByTenant implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByTenant(ctx context.Context, tenantID string, filter timeentry.ListFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "tenant_id = $1"
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND timestamp >= $%d::date", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND timestamp < $%d::date + interval '1 day'", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM time_entries WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, tenant_id, type, mode, timestamp,
			   location_lat, location_lng, is_verified, note, ip_address, created_at
		FROM time_entries
		WHERE %s
		ORDER BY timestamp DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenant time entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timeentry.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read tenant time entries: %w", err)
	}

	return entries, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeEntry(row rowScanner) (timeentry.TimeEntry, error) {
	var entry timeentry.TimeEntry
	var lat, lng *float64

	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.TenantID, &entry.Type, &entry.Mode, &entry.Timestamp,
		&lat, &lng, &entry.IsVerified, &entry.Note, &entry.IPAddress, &entry.CreatedAt,
	)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to scan time entry: %w", err)
	}

	if lat != nil && lng != nil {
		entry.Location = &timeentry.Location{Lat: *lat, Lng: *lng}
	}

	return entry, nil
}
