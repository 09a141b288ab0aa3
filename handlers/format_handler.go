package handlers

import (
	"net/http"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/services"
)

type FormatHandler struct {
	formatService services.FormatService
}

func NewFormatHandler(formatService services.FormatService) *FormatHandler {
	return &FormatHandler{formatService: formatService}
}

// Create registers a format. A missing status defaults by family.
// POST /formats
func (h *FormatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var format models.CompetitionFormat
	if err := readJSON(w, r, &format); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.formatService.CreateFormat(r.Context(), &format); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"format": format}, nil)
}

// Get returns one format.
// GET /formats/{formatID}
func (h *FormatHandler) Get(w http.ResponseWriter, r *http.Request) {
	formatID, err := idParam(r, "formatID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	format, err := h.formatService.GetFormat(r.Context(), formatID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"format": format}, nil)
}

// List returns the format catalog.
// GET /formats
func (h *FormatHandler) List(w http.ResponseWriter, r *http.Request) {
	formats, err := h.formatService.ListFormats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"formats": formats}, nil)
}
