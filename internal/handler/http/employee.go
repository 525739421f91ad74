package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/horaria-hr/horaria-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	SetHomeLocation(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService user.EmployeeService
}

func NewEmployeeHandler(employeeService user.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TenantID = tenantID

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.employeeService.ListEmployees(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Deactivate implements EmployeeHandler.
func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userID := chi.URLParam(r, "id")
	if err := h.employeeService.DeactivateEmployee(r.Context(), tenantID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", nil)
}

// SetHomeLocation implements EmployeeHandler.
func (h *employeeHandlerImpl) SetHomeLocation(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.SetHomeLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set home location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")
	req.TenantID = tenantID

	result, err := h.employeeService.SetHomeLocation(r.Context(), req)
	if err != nil {
		slog.Error("Set home location service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Home location updated successfully", result)
}

// GetProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.GetProfile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	result, err := h.employeeService.UpdateProfile(r.Context(), req)
	if err != nil {
		slog.Error("Update profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", result)
}
