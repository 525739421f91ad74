package timeentry

import "context"

// TimeEntryService defines business logic for clock events.
type TimeEntryService interface {
	// ClockIn validates and records a clock-in for the authenticated user.
	ClockIn(ctx context.Context, req ClockEventRequest) (TimeEntryResponse, error)

	// ClockOut validates and records a clock-out for the authenticated user.
	ClockOut(ctx context.Context, req ClockEventRequest) (TimeEntryResponse, error)

	// GetLastEntry returns the user's most recent entry, or nil if none.
	GetLastEntry(ctx context.Context, userID string) (*TimeEntryResponse, error)

	// GetTodayEntries returns the user's entries for the current local day,
	// oldest first.
	GetTodayEntries(ctx context.Context, userID string) ([]TimeEntryResponse, error)

	// ListEntries retrieves tenant-wide entries for admin review.
	ListEntries(ctx context.Context, tenantID string, filter ListFilter) (ListEntriesResponse, error)
}
