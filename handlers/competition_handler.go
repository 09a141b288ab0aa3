package handlers

import (
	"net/http"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/services"
)

type CompetitionHandler struct {
	competitionService services.CompetitionService
}

func NewCompetitionHandler(competitionService services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitionService: competitionService}
}

// Create registers a new competition.
// POST /competitions
func (h *CompetitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var comp models.Competition
	if err := readJSON(w, r, &comp); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.competitionService.CreateCompetition(r.Context(), &comp); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"competition": comp}, nil)
}

// Get returns one competition with its format.
// GET /competitions/{competitionID}
func (h *CompetitionHandler) Get(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	comp, err := h.competitionService.GetCompetition(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"competition": comp}, nil)
}

// List returns all competitions.
// GET /competitions
func (h *CompetitionHandler) List(w http.ResponseWriter, r *http.Request) {
	comps, err := h.competitionService.ListCompetitions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"competitions": comps}, nil)
}

// Update replaces a competition's configuration.
// PUT /competitions/{competitionID}
func (h *CompetitionHandler) Update(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var comp models.Competition
	if err := readJSON(w, r, &comp); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	comp.ID = competitionID

	if err := h.competitionService.UpdateCompetition(r.Context(), &comp); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"competition": comp}, nil)
}

// Delete removes a competition.
// DELETE /competitions/{competitionID}
func (h *CompetitionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	competitionID, err := idParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.competitionService.DeleteCompetition(r.Context(), competitionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "competition deleted"}, nil)
}
