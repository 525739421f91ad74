package absence

import (
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
)

// ========================================
// ABSENCE DTOs
// ========================================

type RequestAbsenceRequest struct {
	UserID      string      `json:"-"`
	TenantID    string      `json:"-"`
	Type        AbsenceType `json:"type"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Description *string     `json:"description,omitempty"`
}

func (r *RequestAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := []string{string(TypeVacation), string(TypeSickLeave), string(TypePersonal), string(TypeOther)}
	if !validator.IsInSlice(string(r.Type), validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of VACATION, SICK_LEAVE, PERSONAL, OTHER",
		})
	}

	// Format only: the start/end ordering is a business rule checked by the
	// service, which reports it as ErrInvalidDateRange.
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewAbsenceRequest struct {
	ID         string `json:"-"`
	TenantID   string `json:"-"`
	ReviewerID string `json:"-"`
	Reason     string `json:"reason,omitempty"`
}

type AbsenceResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	UserName    *string       `json:"user_name,omitempty"`
	Type        AbsenceType   `json:"type"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Description *string       `json:"description,omitempty"`
	Status      AbsenceStatus `json:"status"`
	ReviewedBy  *string       `json:"reviewed_by,omitempty"`
	ReviewedAt  *string       `json:"reviewed_at,omitempty"`
	CreatedAt   string        `json:"created_at"`
}
