package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/absence"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/auth"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"refresh token revoked", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"missing refresh cookie", auth.ErrRefreshTokenCookieNotFound, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"email exists", user.ErrEmailExists, http.StatusConflict},
		{"user inactive", user.ErrUserInactive, http.StatusForbidden},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"tenant not found", tenant.ErrTenantNotFound, http.StatusNotFound},
		{"already clocked in", timeentry.ErrAlreadyClockedIn, http.StatusConflict},
		{"not clocked in", timeentry.ErrNotClockedIn, http.StatusConflict},
		{"location required", timeentry.ErrLocationRequired, http.StatusBadRequest},
		{"absence already processed", absence.ErrAbsenceAlreadyProcessed, http.StatusConflict},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestHandleError_WrappedErrorsStillMatch(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("failed to record entry: %w", timeentry.ErrAlreadyClockedIn))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleError_GeofenceRejectionCarriesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, &timeentry.OutOfGeofenceError{DistanceMeters: 412.7, LimitMeters: 300})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "413", resp.Error.Details["distance_meters"])
	assert.Equal(t, "300", resp.Error.Details["limit_meters"])
}

func TestHandleError_ValidationErrorsAreUnprocessable(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "mode", Message: "mode must be REMOTE or PRESENTIAL"},
	}

	w := httptest.NewRecorder()
	HandleError(w, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "mode must be REMOTE or PRESENTIAL", resp.Error.Details["mode"])
}
