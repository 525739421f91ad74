package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/handler/http/response"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetLast(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandlerImpl{
		timeEntryService: timeEntryService,
	}
}

// ClockIn implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timeentry.ClockEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	fillClockEvent(&req, userID, tenantID, r)

	result, err := h.timeEntryService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timeentry.ClockEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	fillClockEvent(&req, userID, tenantID, r)

	result, err := h.timeEntryService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock out successful", result)
}

// GetLast implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) GetLast(w http.ResponseWriter, r *http.Request) {
	userID, _, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeEntryService.GetLastEntry(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetToday implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	userID, _, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.timeEntryService.GetTodayEntries(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// List implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := identityFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := timeentry.ListFilter{}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	filter.Page = page

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	filter.Limit = limit

	result, err := h.timeEntryService.ListEntries(r.Context(), tenantID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// fillClockEvent stamps token identity and request metadata onto the event.
func fillClockEvent(req *timeentry.ClockEventRequest, userID string, tenantID string, r *http.Request) {
	req.UserID = userID
	req.TenantID = tenantID

	if ip := r.RemoteAddr; ip != "" {
		req.IPAddress = &ip
	}
}
