package tenant

import (
	"context"
	"fmt"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
)

type TenantServiceImpl struct {
	tenant.TenantRepository
}

func NewTenantService(tenantRepository tenant.TenantRepository) tenant.TenantService {
	return &TenantServiceImpl{
		TenantRepository: tenantRepository,
	}
}

// GetSettings implements tenant.TenantService.
func (t *TenantServiceImpl) GetSettings(ctx context.Context, tenantID string) (tenant.TenantSettingsResponse, error) {
	tenantData, err := t.TenantRepository.GetByID(ctx, tenantID)
	if err != nil {
		return tenant.TenantSettingsResponse{}, err
	}

	return mapTenantToResponse(tenantData), nil
}

// UpdateOfficeLocation implements tenant.TenantService.
func (t *TenantServiceImpl) UpdateOfficeLocation(ctx context.Context, tenantID string, req tenant.UpdateOfficeLocationRequest) (tenant.TenantSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return tenant.TenantSettingsResponse{}, err
	}

	if err := t.TenantRepository.UpdateOfficeLocation(ctx, tenantID, req); err != nil {
		return tenant.TenantSettingsResponse{}, fmt.Errorf("failed to update office location: %w", err)
	}

	tenantData, err := t.TenantRepository.GetByID(ctx, tenantID)
	if err != nil {
		return tenant.TenantSettingsResponse{}, err
	}

	return mapTenantToResponse(tenantData), nil
}

func mapTenantToResponse(t tenant.Tenant) tenant.TenantSettingsResponse {
	return tenant.TenantSettingsResponse{
		ID:                 t.ID,
		Name:               t.Name,
		PlanType:           t.PlanType,
		OfficeLat:          t.OfficeLat,
		OfficeLng:          t.OfficeLng,
		OfficeAddress:      t.OfficeAddress,
		OfficeRadiusMeters: t.OfficeRadius(),
	}
}
