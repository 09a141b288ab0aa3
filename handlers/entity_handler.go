package handlers

import (
	"net/http"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/services"
)

type ClubHandler struct {
	clubService services.ClubService
}

func NewClubHandler(clubService services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// POST /clubs
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var club models.Club
	if err := readJSON(w, r, &club); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if club.Name == "" {
		errorResponse(w, r, http.StatusBadRequest, "club name is required")
		return
	}

	if err := h.clubService.CreateClub(r.Context(), &club); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"club": club}, nil)
}

// GET /clubs/{clubID}
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	clubID, err := idParam(r, "clubID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	club, err := h.clubService.GetClub(r.Context(), clubID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"club": club}, nil)
}

// GET /clubs
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.ListClubs(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"clubs": clubs}, nil)
}

type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(participantService services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

// POST /participants
func (h *ParticipantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var participant models.Participant
	if err := readJSON(w, r, &participant); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if participant.FirstName == "" && participant.LastName == "" {
		errorResponse(w, r, http.StatusBadRequest, "participant name is required")
		return
	}

	if err := h.participantService.CreateParticipant(r.Context(), &participant); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"participant": participant}, nil)
}

// GET /participants/{participantID}
func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	participantID, err := idParam(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.GetParticipant(r.Context(), participantID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"participant": participant}, nil)
}

// GET /participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantService.ListParticipants(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"participants": participants}, nil)
}
