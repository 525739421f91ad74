package tenant

import (
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
)

type UpdateOfficeLocationRequest struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Address      string  `json:"address"`
	RadiusMeters int     `json:"radius_meters"`
}

func (r *UpdateOfficeLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsFiniteCoordinate(r.Lat, r.Lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "coordinates must be finite numbers",
		})
	} else {
		if !validator.IsValidLatitude(r.Lat) {
			errs = append(errs, validator.ValidationError{
				Field:   "lat",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Lng) {
			errs = append(errs, validator.ValidationError{
				Field:   "lng",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TenantSettingsResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	PlanType           string   `json:"plan_type"`
	OfficeLat          *float64 `json:"office_lat"`
	OfficeLng          *float64 `json:"office_lng"`
	OfficeAddress      *string  `json:"office_address"`
	OfficeRadiusMeters int      `json:"office_radius_meters"`
}
