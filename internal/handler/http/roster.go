package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	Overtime(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// Generate implements RosterHandler.
func (h *rosterHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var req roster.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProjectID = projectID

	result, err := h.rosterService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster generated successfully", mapGenerateResult(result))
}

// GetMonth implements RosterHandler.
func (h *rosterHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	year, month, err := parseYearMonth(r)
	if err != nil {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	assignments, err := h.rosterService.GetMonth(r.Context(), projectID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]roster.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, roster.MapAssignmentToResponse(a))
	}

	response.Success(w, resp)
}

// Overtime implements RosterHandler.
func (h *rosterHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	year, month, err := parseYearMonth(r)
	if err != nil {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	summaries, err := h.rosterService.Overtime(r.Context(), projectID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]roster.OvertimeSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, roster.MapOvertimeSummaryToResponse(s))
	}

	response.Success(w, resp)
}

func parseYearMonth(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, roster.ErrInvalidRequestData
	}
	return year, time.Month(month), nil
}

func mapGenerateResult(result roster.GenerateResult) roster.GenerateResponse {
	resp := roster.GenerateResponse{
		ProjectID:         result.ProjectID,
		Year:              result.Year,
		Month:             result.Month,
		Assignments:       make([]roster.AssignmentResponse, 0, len(result.Assignments)),
		CoverageIssues:    make([]roster.CoverageIssueResponse, 0, len(result.CoverageIssues)),
		OvertimeSummaries: make([]roster.OvertimeSummaryResponse, 0, len(result.OvertimeSummaries)),
	}
	for _, a := range result.Assignments {
		resp.Assignments = append(resp.Assignments, roster.MapAssignmentToResponse(a))
	}
	for _, issue := range result.CoverageIssues {
		resp.CoverageIssues = append(resp.CoverageIssues, roster.MapCoverageIssueToResponse(issue))
	}
	for _, s := range result.OvertimeSummaries {
		resp.OvertimeSummaries = append(resp.OvertimeSummaries, roster.MapOvertimeSummaryToResponse(s))
	}
	return resp
}
