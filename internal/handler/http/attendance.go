package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	service timerecord.TimeRegistrationService
}

func NewAttendanceHandler(service timerecord.TimeRegistrationService) AttendanceHandler {
	return &attendanceHandlerImpl{service: service}
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	record, err := h.service.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, record)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req timerecord.CheckOutRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode check-out request", "error", err)
			response.BadRequest(w, "Invalid request format")
			return
		}
	}

	record, err := h.service.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Records implements AttendanceHandler.
func (h *attendanceHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	days, err := parseDays(r.URL.Query().Get("days"))
	if err != nil {
		response.BadRequest(w, "days must be a positive integer")
		return
	}

	records, err := h.service.GetRecentRecords(r.Context(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// parseDays parses the optional days query parameter. Zero means "use the
// operation default".
func parseDays(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, strconv.ErrSyntax
	}
	return days, nil
}
