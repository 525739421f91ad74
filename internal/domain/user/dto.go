package user

import (
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	TenantID string `json:"-"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != "" && r.Role != RoleCompanyAdmin && r.Role != RoleEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be COMPANY_ADMIN or EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProfileRequest struct {
	UserID   string  `json:"-"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetHomeLocationRequest stores a pre-geocoded home-office reference point.
// Geocoding from a street address happens outside this service.
type SetHomeLocationRequest struct {
	UserID   string  `json:"-"`
	TenantID string  `json:"-"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Address  string  `json:"address"`
}

func (r *SetHomeLocationRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID          string   `json:"id"`
	TenantID    string   `json:"tenant_id"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	Role        Role     `json:"role"`
	HomeLat     *float64 `json:"home_lat,omitempty"`
	HomeLng     *float64 `json:"home_lng,omitempty"`
	HomeAddress *string  `json:"home_address,omitempty"`
	Active      bool     `json:"active"`
	CreatedAt   string   `json:"created_at"`
}
