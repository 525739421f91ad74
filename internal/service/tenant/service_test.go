package tenant

import (
	"context"
	"testing"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func (f *fakeTenantRepo) UpdateOfficeLocation(_ context.Context, id string, req tenant.UpdateOfficeLocationRequest) error {
	t, ok := f.tenants[id]
	if !ok {
		return tenant.ErrTenantNotFound
	}
	t.OfficeLat = &req.Lat
	t.OfficeLng = &req.Lng
	if req.Address != "" {
		t.OfficeAddress = &req.Address
	}
	if req.RadiusMeters > 0 {
		t.OfficeRadiusMeters = &req.RadiusMeters
	}
	f.tenants[id] = t
	return nil
}

func newTestService() tenant.TenantService {
	repo := &fakeTenantRepo{
		tenants: map[string]tenant.Tenant{
			"tenant-1": {ID: "tenant-1", Name: "Acme Corp", PlanType: "FREE"},
		},
	}
	return NewTenantService(repo)
}

func TestGetSettings_UnconfiguredOfficeUsesDefaultRadius(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetSettings(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Nil(t, resp.OfficeLat)
	assert.Nil(t, resp.OfficeLng)
	assert.Equal(t, tenant.DefaultOfficeRadiusMeters, resp.OfficeRadiusMeters)
}

func TestGetSettings_UnknownTenant(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetSettings(context.Background(), "tenant-9")

	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
}

func TestUpdateOfficeLocation_StoresGeofence(t *testing.T) {
	svc := newTestService()

	resp, err := svc.UpdateOfficeLocation(context.Background(), "tenant-1", tenant.UpdateOfficeLocationRequest{
		Lat:          -34.6037,
		Lng:          -58.3816,
		Address:      "Av. Corrientes 1000, CABA",
		RadiusMeters: 150,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.OfficeLat)
	assert.InDelta(t, -34.6037, *resp.OfficeLat, 1e-9)
	assert.Equal(t, 150, resp.OfficeRadiusMeters)
}

func TestUpdateOfficeLocation_RejectsInvalidCoordinates(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateOfficeLocation(context.Background(), "tenant-1", tenant.UpdateOfficeLocationRequest{
		Lat: -95.0,
		Lng: -58.3816,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}
