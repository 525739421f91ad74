package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/absence"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/auth"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry the measured distance and the allowed
	// radius so the client can show them.
	var geofenceErr *timeentry.OutOfGeofenceError
	if errors.As(err, &geofenceErr) {
		BadRequest(w, geofenceErr.Error(), map[string]string{
			"distance_meters": fmt.Sprintf("%.0f", geofenceErr.DistanceMeters),
			"limit_meters":    fmt.Sprintf("%d", geofenceErr.LimitMeters),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token is required")
	case errors.Is(err, auth.ErrOAuthEmailNotLinked):
		NotFound(w, "No account is linked to this email")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Tenant domain errors
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrAlreadyClockedIn):
		Conflict(w, "There is already an open work session")
	case errors.Is(err, timeentry.ErrNotClockedIn):
		Conflict(w, "There is no open work session")
	case errors.Is(err, timeentry.ErrLocationRequired):
		BadRequest(w, "Location is required for presential mode", nil)
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence report not found")
	case errors.Is(err, absence.ErrAbsenceAlreadyProcessed):
		Conflict(w, "Absence report already processed")
	case errors.Is(err, absence.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
