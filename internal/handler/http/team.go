package http

import (
	"net/http"

	"github.com/contoso/timereg-backend-go/internal/domain/team"
	"github.com/contoso/timereg-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TeamHandler interface {
	Statistics(w http.ResponseWriter, r *http.Request)
	Summaries(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	MemberRecords(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	service team.TeamService
}

func NewTeamHandler(service team.TeamService) TeamHandler {
	return &teamHandlerImpl{service: service}
}

// Statistics implements TeamHandler.
func (h *teamHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Summaries implements TeamHandler.
func (h *teamHandlerImpl) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.MemberSummaries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// Records implements TeamHandler.
func (h *teamHandlerImpl) Records(w http.ResponseWriter, r *http.Request) {
	days, err := parseDays(r.URL.Query().Get("days"))
	if err != nil {
		response.BadRequest(w, "days must be a positive integer")
		return
	}

	records, err := h.service.RecordsByDate(r.Context(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MemberRecords implements TeamHandler.
func (h *teamHandlerImpl) MemberRecords(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	days, err := parseDays(r.URL.Query().Get("days"))
	if err != nil {
		response.BadRequest(w, "days must be a positive integer")
		return
	}

	records, err := h.service.MemberRecords(r.Context(), userID, days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Approve implements TeamHandler.
func (h *teamHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Approve(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Reject implements TeamHandler.
func (h *teamHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Reject(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}
