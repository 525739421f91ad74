package timeentry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries []timeentry.TimeEntry
	nextID  int
}

func (f *fakeEntryRepo) Create(_ context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	entry.ID = fmt.Sprintf("entry-%04d", f.nextID)
	entry.CreatedAt = time.Now().UTC()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeEntryRepo) GetLastByUser(_ context.Context, userID string) (timeentry.TimeEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var last *timeentry.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID {
			continue
		}
		// Timestamp descending, insertion order as tie-break.
		if last == nil || e.Timestamp.After(last.Timestamp) || e.Timestamp.Equal(last.Timestamp) {
			last = e
		}
	}
	if last == nil {
		return timeentry.TimeEntry{}, pgx.ErrNoRows
	}
	return *last, nil
}

func (f *fakeEntryRepo) ListByUserInRange(_ context.Context, userID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]timeentry.TimeEntry, 0)
	for _, e := range f.entries {
		if e.UserID == userID && !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByTenant(_ context.Context, tenantID string, _ timeentry.ListFilter) ([]timeentry.TimeEntry, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]timeentry.TimeEntry, 0)
	for _, e := range f.entries {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntryRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}
func (f *fakeUserRepo) ListByTenant(_ context.Context, _ string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }

type fakeTenantRepo struct {
	tenants map[string]tenant.Tenant
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (tenant.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return tenant.Tenant{}, tenant.ErrTenantNotFound
	}
	return t, nil
}
func (f *fakeTenantRepo) UpdateOfficeLocation(_ context.Context, _ string, _ tenant.UpdateOfficeLocationRequest) error {
	return nil
}

// ===== TEST SETUP =====

func newTestService(t *testing.T) (timeentry.TimeEntryService, *fakeEntryRepo) {
	t.Helper()

	entryRepo := &fakeEntryRepo{}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", TenantID: "tenant-1", Email: "ana@acme.com", FullName: "Ana García"},
		"user-2": {ID: "user-2", TenantID: "tenant-1", Email: "luis@acme.com", FullName: "Luis Pérez",
			HomeLat: &homeLat, HomeLng: &homeLng},
	}}
	tenantRepo := &fakeTenantRepo{tenants: map[string]tenant.Tenant{
		"tenant-1": tenantWithOffice(nil),
		"tenant-2": {ID: "tenant-2", Name: "No Office Inc"},
	}}

	svc := NewTimeEntryService(nil, entryRepo, userRepo, tenantRepo, time.UTC)
	return svc, entryRepo
}

func clockInReq(userID, tenantID string, mode timeentry.WorkMode, loc *timeentry.Location) timeentry.ClockEventRequest {
	return timeentry.ClockEventRequest{
		UserID:   userID,
		TenantID: tenantID,
		Mode:     mode,
		Location: loc,
	}
}

// ===== CLOCK EVENT TESTS =====

func TestTimeEntryService_ClockInClockOutCycle(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	officeLoc := &timeentry.Location{Lat: officeLat, Lng: officeLng}

	// Clock in at the exact office coordinates.
	entry, err := svc.ClockIn(ctx, clockInReq("user-1", "tenant-1", timeentry.ModePresential, officeLoc))
	require.NoError(t, err)
	assert.Equal(t, timeentry.TypeEntry, entry.Type)
	assert.True(t, entry.IsVerified)
	assert.Nil(t, entry.Metadata)
	assert.NotEmpty(t, entry.ID)

	// A second clock-in is an illegal self-transition.
	_, err = svc.ClockIn(ctx, clockInReq("user-1", "tenant-1", timeentry.ModePresential, officeLoc))
	assert.ErrorIs(t, err, timeentry.ErrAlreadyClockedIn)

	// Clock out remotely without coordinates succeeds verified.
	exit, err := svc.ClockOut(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
	require.NoError(t, err)
	assert.Equal(t, timeentry.TypeExit, exit.Type)
	assert.True(t, exit.IsVerified)

	// Back to NOT_WORKING: clocking out again fails.
	_, err = svc.ClockOut(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
	assert.ErrorIs(t, err, timeentry.ErrNotClockedIn)

	assert.Equal(t, 2, repo.count())
}

func TestTimeEntryService_ClockOutWithoutHistoryFails(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.ClockOut(context.Background(), clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))

	assert.ErrorIs(t, err, timeentry.ErrNotClockedIn)
	assert.Equal(t, 0, repo.count())
}

func TestTimeEntryService_PresentialWithoutLocationFails(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.ClockIn(context.Background(), clockInReq("user-1", "tenant-1", timeentry.ModePresential, nil))

	assert.ErrorIs(t, err, timeentry.ErrLocationRequired)
	assert.Equal(t, 0, repo.count())
}

func TestTimeEntryService_PresentialOutOfGeofenceCreatesNoRecord(t *testing.T) {
	svc, repo := newTestService(t)
	farAway := nearbyLocation(officeLat, officeLng, 5000)

	_, err := svc.ClockIn(context.Background(), clockInReq("user-1", "tenant-1", timeentry.ModePresential, farAway))

	var geofenceErr *timeentry.OutOfGeofenceError
	require.True(t, errors.As(err, &geofenceErr))
	assert.Equal(t, 0, repo.count())

	// The user can still clock in afterwards: the failed attempt left no state.
	_, err = svc.ClockIn(context.Background(), clockInReq("user-1", "tenant-1", timeentry.ModePresential,
		&timeentry.Location{Lat: officeLat, Lng: officeLng}))
	assert.NoError(t, err)
}

func TestTimeEntryService_PresentialUnconfiguredOfficeIsFlagged(t *testing.T) {
	svc, _ := newTestService(t)

	entry, err := svc.ClockIn(context.Background(), clockInReq("user-1", "tenant-2", timeentry.ModePresential,
		&timeentry.Location{Lat: officeLat, Lng: officeLng}))

	require.NoError(t, err)
	assert.False(t, entry.IsVerified)
	require.NotNil(t, entry.Metadata)
	assert.Equal(t, "Ubicación de Oficina no configurada en el sistema.", entry.Metadata.Note)
}

func TestTimeEntryService_RemoteFarFromHomeIsFlaggedButRecorded(t *testing.T) {
	svc, repo := newTestService(t)
	farFromHome := nearbyLocation(homeLat, homeLng, 3000)

	entry, err := svc.ClockIn(context.Background(), clockInReq("user-2", "tenant-1", timeentry.ModeRemote, farFromHome))

	require.NoError(t, err)
	assert.False(t, entry.IsVerified)
	require.NotNil(t, entry.Metadata)
	assert.Contains(t, entry.Metadata.Note, "Home Office")
	assert.Equal(t, 1, repo.count())
}

func TestTimeEntryService_UnknownUserFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ClockIn(context.Background(), clockInReq("ghost", "tenant-1", timeentry.ModeRemote, nil))

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestTimeEntryService_UnknownTenantFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ClockIn(context.Background(), clockInReq("user-1", "ghost", timeentry.ModeRemote, nil))

	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
}

func TestTimeEntryService_InvalidModeFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ClockIn(context.Background(), clockInReq("user-1", "tenant-1", "HYBRID", nil))

	assert.Error(t, err)
}

// ===== INVARIANT TESTS =====

func TestTimeEntryService_TypesStrictlyAlternate(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// Fire a mixed sequence of attempts; only legal transitions may land.
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			_, _ = svc.ClockOut(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
		} else {
			_, _ = svc.ClockIn(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
		}
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.NotEmpty(t, repo.entries)
	assert.Equal(t, timeentry.TypeEntry, repo.entries[0].Type)
	for i := 1; i < len(repo.entries); i++ {
		assert.NotEqual(t, repo.entries[i-1].Type, repo.entries[i].Type,
			"entries must alternate ENTRY/EXIT")
	}
}

func TestTimeEntryService_ConcurrentClockInsAreSerialized(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	errsCh := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ClockIn(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	var succeeded, rejected int
	for err := range errsCh {
		if err == nil {
			succeeded++
		} else if errors.Is(err, timeentry.ErrAlreadyClockedIn) {
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one duplicate submission may win")
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, 1, repo.count())
}

// ===== QUERY TESTS =====

func TestTimeEntryService_GetLastEntry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	last, err := svc.GetLastEntry(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, last)

	_, err = svc.ClockIn(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
	require.NoError(t, err)

	last, err = svc.GetLastEntry(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, timeentry.TypeEntry, last.Type)
}

func TestTimeEntryService_GetTodayEntriesIsAscendingAndDayScoped(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// Seed a closed session from before today's boundary directly in the store.
	now := time.Now().UTC()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	repo.entries = append(repo.entries,
		timeentry.TimeEntry{ID: "old-1", UserID: "user-1", TenantID: "tenant-1",
			Type: timeentry.TypeEntry, Mode: timeentry.ModeRemote, Timestamp: startOfToday.Add(-10 * time.Hour)},
		timeentry.TimeEntry{ID: "old-2", UserID: "user-1", TenantID: "tenant-1",
			Type: timeentry.TypeExit, Mode: timeentry.ModeRemote, Timestamp: startOfToday.Add(-2 * time.Hour)},
	)

	_, err := svc.ClockIn(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, clockInReq("user-1", "tenant-1", timeentry.ModeRemote, nil))
	require.NoError(t, err)

	today, err := svc.GetTodayEntries(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, today, 2)
	assert.Equal(t, timeentry.TypeEntry, today[0].Type)
	assert.Equal(t, timeentry.TypeExit, today[1].Type)
	for _, e := range today {
		assert.NotContains(t, []string{"old-1", "old-2"}, e.ID)
	}
}

func TestDayWindow_FollowsLocalDayAcrossDST(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		loc     *time.Location
		wantLen time.Duration
	}{
		{"regular utc day", time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC), time.UTC, 24 * time.Hour},
		{"spring forward is a 23h day", time.Date(2026, 3, 29, 12, 0, 0, 0, madrid), madrid, 23 * time.Hour},
		{"fall back is a 25h day", time.Date(2026, 10, 25, 12, 0, 0, 0, madrid), madrid, 25 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := dayWindow(tt.now, tt.loc)

			assert.Equal(t, time.Date(tt.now.Year(), tt.now.Month(), tt.now.Day(), 0, 0, 0, 0, tt.loc), start)
			assert.Equal(t, tt.wantLen-time.Millisecond, end.Sub(start))
			assert.True(t, start.Before(tt.now) && end.After(tt.now))
		})
	}
}
