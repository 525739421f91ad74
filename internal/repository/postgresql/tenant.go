package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type tenantRepository struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepository{db: db}
}

// GetByID implements tenant.TenantRepository.
func (r *tenantRepository) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, plan_type, office_lat, office_lng, office_address,
			   office_radius_meters, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var t tenant.Tenant
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.PlanType, &t.OfficeLat, &t.OfficeLng, &t.OfficeAddress,
		&t.OfficeRadiusMeters, &t.CreatedAt, &t.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("failed to get tenant by ID: %w", err)
	}

	return t, nil
}

// UpdateOfficeLocation implements tenant.TenantRepository.
func (r *tenantRepository) UpdateOfficeLocation(ctx context.Context, id string, req tenant.UpdateOfficeLocationRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tenants
		SET office_lat = $2, office_lng = $3, office_address = $4,
			office_radius_meters = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, req.Lat, req.Lng, req.Address, req.RadiusMeters)
	if err != nil {
		return fmt.Errorf("failed to update office location: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return tenant.ErrTenantNotFound
	}

	return nil
}
