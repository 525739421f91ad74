package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for clock events. Entries are
// append-only; there is no update or delete.
type TimeEntryRepository interface {
	// Create inserts a new time entry and returns it with generated fields.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetLastByUser retrieves the most recent entry for a user, ordered by
	// timestamp descending with insertion order as tie-break. Returns
	// pgx.ErrNoRows wrapped when the user has no entries.
	GetLastByUser(ctx context.Context, userID string) (TimeEntry, error)

	// ListByUserInRange retrieves entries whose timestamp falls within
	// [start, end], oldest first regardless of storage order.
	ListByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]TimeEntry, error)

	// ListByTenant retrieves entries for a tenant with filters and
	// pagination, newest first. Used by admin reporting.
	ListByTenant(ctx context.Context, tenantID string, filter ListFilter) ([]TimeEntry, int64, error)
}
