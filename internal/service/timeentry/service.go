package timeentry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type TimeEntryServiceImpl struct {
	db *database.DB
	timeentry.TimeEntryRepository
	user.UserRepository
	tenant.TenantRepository
	loc *time.Location

	// Clock events for the same user must be serialized: the last-entry
	// check followed by the insert is a check-then-act sequence, and two
	// concurrent duplicate submissions would otherwise both pass the check
	// and break the ENTRY/EXIT alternation.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewTimeEntryService(
	db *database.DB,
	entryRepo timeentry.TimeEntryRepository,
	userRepo user.UserRepository,
	tenantRepo tenant.TenantRepository,
	loc *time.Location,
) timeentry.TimeEntryService {
	if loc == nil {
		loc = time.UTC
	}
	return &TimeEntryServiceImpl{
		db:                  db,
		TimeEntryRepository: entryRepo,
		UserRepository:      userRepo,
		TenantRepository:    tenantRepo,
		loc:                 loc,
		userLocks:           make(map[string]*sync.Mutex),
	}
}

func (s *TimeEntryServiceImpl) lockUser(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// ClockIn implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockEventRequest) (timeentry.TimeEntryResponse, error) {
	return s.recordClockEvent(ctx, req, timeentry.TypeEntry)
}

// ClockOut implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockEventRequest) (timeentry.TimeEntryResponse, error) {
	return s.recordClockEvent(ctx, req, timeentry.TypeExit)
}

func (s *TimeEntryServiceImpl) recordClockEvent(ctx context.Context, req timeentry.ClockEventRequest, entryType timeentry.EntryType) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	l := s.lockUser(req.UserID)
	l.Lock()
	defer l.Unlock()

	lastEntry, err := s.TimeEntryRepository.GetLastByUser(ctx, req.UserID)
	hasLast := true
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get last entry: %w", err)
		}
		hasLast = false
	}

	// Legality depends solely on the type of the last entry. There is no
	// same-day constraint: a session may span midnight.
	switch entryType {
	case timeentry.TypeEntry:
		if hasLast && lastEntry.Type == timeentry.TypeEntry {
			return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyClockedIn
		}
	case timeentry.TypeExit:
		if !hasLast || lastEntry.Type == timeentry.TypeExit {
			return timeentry.TimeEntryResponse{}, timeentry.ErrNotClockedIn
		}
	}

	userData, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntryResponse{}, user.ErrUserNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	tenantData, err := s.TenantRepository.GetByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			return timeentry.TimeEntryResponse{}, tenant.ErrTenantNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get tenant: %w", err)
	}

	isVerified, note, err := evaluateTrustPolicy(req.Mode, req.Location, tenantData, userData)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry := timeentry.TimeEntry{
		UserID:     req.UserID,
		TenantID:   req.TenantID,
		Type:       entryType,
		Mode:       req.Mode,
		Timestamp:  time.Now().UTC(),
		Location:   req.Location,
		IsVerified: isVerified,
		IPAddress:  req.IPAddress,
	}
	if note != "" {
		entry.Note = &note
	}

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// GetLastEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetLastEntry(ctx context.Context, userID string) (*timeentry.TimeEntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetLastByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last entry: %w", err)
	}

	resp := mapEntryToResponse(entry)
	return &resp, nil
}

// GetTodayEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetTodayEntries(ctx context.Context, userID string) ([]timeentry.TimeEntryResponse, error) {
	startOfDay, endOfDay := dayWindow(time.Now(), s.loc)

	entries, err := s.TimeEntryRepository.ListByUserInRange(ctx, userID, startOfDay, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return responses, nil
}

// ListEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListEntries(ctx context.Context, tenantID string, filter timeentry.ListFilter) (timeentry.ListEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return timeentry.ListEntriesResponse{}, err
	}

	entries, total, err := s.TimeEntryRepository.ListByTenant(ctx, tenantID, filter)
	if err != nil {
		return timeentry.ListEntriesResponse{}, fmt.Errorf("failed to list entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return timeentry.ListEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Entries:    responses,
	}, nil
}

// dayWindow returns the inclusive [00:00:00.000, 23:59:59.999] bounds of
// now's calendar day in loc. The end is derived from the next midnight so
// days shortened or stretched by a DST transition keep their real boundary.
func dayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	now = now.In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	end := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	return start, end
}

// mapEntryToResponse converts a TimeEntry entity to its wire shape.
func mapEntryToResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	var metadata *timeentry.Metadata
	if entry.Note != nil {
		metadata = &timeentry.Metadata{Note: *entry.Note}
	}

	return timeentry.TimeEntryResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		TenantID:   entry.TenantID,
		Type:       entry.Type,
		Mode:       entry.Mode,
		Timestamp:  entry.Timestamp.UTC().Format(time.RFC3339),
		Location:   entry.Location,
		IsVerified: entry.IsVerified,
		Metadata:   metadata,
		IPAddress:  entry.IPAddress,
	}
}
