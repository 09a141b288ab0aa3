package handlers

import (
	"net/http"

	"github.com/gms-project/gms-backend/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// List returns the standings table in display order.
// GET /competitions/{competitionID}/standings
func (h *StandingsHandler) List(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.List(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil)
}

// Recompute rebuilds the standings from completed results.
// POST /competitions/{competitionID}/standings/recompute
func (h *StandingsHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.standingsService.Recompute(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil)
}
