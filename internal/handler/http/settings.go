package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpdateOfficeLocation(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	tenantService tenant.TenantService
}

func NewSettingsHandler(tenantService tenant.TenantService) SettingsHandler {
	return &settingsHandlerImpl{
		tenantService: tenantService,
	}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.tenantService.GetSettings(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateOfficeLocation implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateOfficeLocation(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req tenant.UpdateOfficeLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update office location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tenantService.UpdateOfficeLocation(r.Context(), tenantID, req)
	if err != nil {
		slog.Error("Update office location service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location updated successfully", result)
}
