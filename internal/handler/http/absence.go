package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/absence"
	"github.com/horaria-hr/horaria-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{
		absenceService: absenceService,
	}
}

// Request implements AbsenceHandler.
func (h *absenceHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	userID, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req absence.RequestAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Request absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID
	req.TenantID = tenantID

	result, err := h.absenceService.RequestAbsence(r.Context(), req)
	if err != nil {
		slog.Error("Request absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence report created successfully", result)
}

// GetMine implements AbsenceHandler.
func (h *absenceHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.absenceService.GetMyAbsences(r.Context(), userID, tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// List implements AbsenceHandler.
func (h *absenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var status *absence.AbsenceStatus
	if s := r.URL.Query().Get("status"); s != "" {
		statusValue := absence.AbsenceStatus(s)
		status = &statusValue
	}

	results, err := h.absenceService.ListAbsences(r.Context(), tenantID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements AbsenceHandler.
func (h *absenceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeReview(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.absenceService.ApproveAbsence(r.Context(), req)
	if err != nil {
		slog.Error("Approve absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence report approved successfully", result)
}

// Reject implements AbsenceHandler.
func (h *absenceHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeReview(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.absenceService.RejectAbsence(r.Context(), req)
	if err != nil {
		slog.Error("Reject absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence report rejected successfully", result)
}

func (h *absenceHandlerImpl) decodeReview(r *http.Request) (absence.ReviewAbsenceRequest, error) {
	reviewerID, tenantID, err := identityFromRequest(r)
	if err != nil {
		return absence.ReviewAbsenceRequest{}, err
	}

	var req absence.ReviewAbsenceRequest
	// The review body is optional (a rejection may carry a reason).
	_ = json.NewDecoder(r.Body).Decode(&req)
	req.ID = chi.URLParam(r, "id")
	req.TenantID = tenantID
	req.ReviewerID = reviewerID

	return req, nil
}
