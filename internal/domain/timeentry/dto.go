package timeentry

import (
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
)

// ========================================
// TIME ENTRY DTOs
// ========================================

// ClockEventRequest carries a clock-in or clock-out. Identity fields are
// filled by the handler from the verified token, never from the body.
type ClockEventRequest struct {
	UserID    string    `json:"-"`
	TenantID  string    `json:"-"`
	Mode      WorkMode  `json:"mode"`
	Location  *Location `json:"location,omitempty"`
	IPAddress *string   `json:"-"`
}

func (r *ClockEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if r.Mode != ModeRemote && r.Mode != ModePresential {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be REMOTE or PRESENTIAL",
		})
	}

	if r.Location != nil {
		if !validator.IsFiniteCoordinate(r.Location.Lat, r.Location.Lng) {
			errs = append(errs, validator.ValidationError{
				Field:   "location",
				Message: "coordinates must be finite numbers",
			})
		} else {
			if !validator.IsValidLatitude(r.Location.Lat) {
				errs = append(errs, validator.ValidationError{
					Field:   "location.lat",
					Message: "latitude must be between -90 and 90",
				})
			}
			if !validator.IsValidLongitude(r.Location.Lng) {
				errs = append(errs, validator.ValidationError{
					Field:   "location.lng",
					Message: "longitude must be between -180 and 180",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Metadata is the optional free-form annotation stored with an entry.
// Only the verification note is used today.
type Metadata struct {
	Note string `json:"note,omitempty"`
}

type TimeEntryResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	TenantID   string    `json:"tenantId"`
	Type       EntryType `json:"type"`
	Mode       WorkMode  `json:"mode"`
	Timestamp  string    `json:"timestamp"`
	Location   *Location `json:"location"`
	IsVerified bool      `json:"isVerified"`
	Metadata   *Metadata `json:"metadata"`
	IPAddress  *string   `json:"ipAddress,omitempty"`
}

type ListFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be greater than 0",
		})
	}

	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntriesResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Entries    []TimeEntryResponse `json:"entries"`
}
