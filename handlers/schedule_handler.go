package handlers

import (
	"net/http"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Generate builds and stores the schedule for a competition.
// POST /competitions/{competitionID}/schedule/generate
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scheduleService.GenerateSchedule(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"schedule": result}, nil)
}

// GenerateDraft builds a draft schedule without final dates.
// POST /competitions/{competitionID}/schedule/draft
func (h *ScheduleHandler) GenerateDraft(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scheduleService.GenerateDraftSchedule(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"schedule": result}, nil)
}

type seedingRequest struct {
	Order []int `json:"order"`
}

// SaveSeeding stores an explicit seeding order and regenerates from it.
// POST /competitions/{competitionID}/schedule/seeding
func (h *ScheduleHandler) SaveSeeding(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input seedingRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scheduleService.SaveSeedingAndGenerate(r.Context(), competitionID, input.Order)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"schedule": result}, nil)
}

// AssignDates fills in dates for a draft schedule.
// POST /competitions/{competitionID}/schedule/assign-dates
func (h *ScheduleHandler) AssignDates(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.scheduleService.AssignMatchDates(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

// Finalize promotes a draft schedule to scheduled.
// POST /competitions/{competitionID}/schedule/finalize
func (h *ScheduleHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.scheduleService.FinalizeSchedule(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

// Reset wipes the schedule, results and standings of a competition.
// DELETE /competitions/{competitionID}/schedule
func (h *ScheduleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.scheduleService.ResetBracket(r.Context(), competitionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "schedule reset"}, nil)
}

// ListMatches returns a competition's matches with optional round and status
// filters.
// GET /competitions/{competitionID}/matches?round=&status=
func (h *ScheduleHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var round *int
	if raw := r.URL.Query().Get("round"); raw != "" {
		value, err := parsePositiveInt(raw)
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
		round = &value
	}

	var status *models.MatchStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		value := models.MatchStatus(raw)
		status = &value
	}

	matches, err := h.scheduleService.ListMatches(r.Context(), competitionID, round, status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

// Overview returns the competition with its matches and standings.
// GET /competitions/{competitionID}/overview
func (h *ScheduleHandler) Overview(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	overview, err := h.scheduleService.GetCompetitionOverview(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview, nil)
}
