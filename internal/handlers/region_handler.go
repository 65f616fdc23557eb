package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/services"
)

type RegionHandler struct {
	Service *services.RegionService
}

func (h *RegionHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.Service.GetRegions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch regions")
		return
	}

	lang := language(r)
	views := make([]models.RegionView, 0, len(regions))
	for _, region := range regions {
		views = append(views, region.Localize(lang))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *RegionHandler) CreateRegion(w http.ResponseWriter, r *http.Request) {
	var region models.Region
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	newRegion, err := h.Service.CreateRegion(r.Context(), region)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create region")
		return
	}
	writeJSON(w, http.StatusCreated, newRegion)
}

func (h *RegionHandler) UpdateRegion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid region ID")
		return
	}

	region, err := h.Service.GetRegionByID(r.Context(), id)
	if errors.Is(err, models.ErrRegionNotFound) {
		writeError(w, http.StatusNotFound, "Region not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch region")
		return
	}

	// Decoding over the loaded record keeps absent fields untouched.
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	region.ID = id

	updatedRegion, err := h.Service.UpdateRegion(r.Context(), region)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update region")
		return
	}
	writeJSON(w, http.StatusOK, updatedRegion)
}

func (h *RegionHandler) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid region ID")
		return
	}

	err = h.Service.DeleteRegion(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrRegionNotFound):
		writeError(w, http.StatusNotFound, "Region not found")
	case errors.Is(err, models.ErrRegionInUse):
		writeError(w, http.StatusConflict, "Region is still referenced by existing content")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to delete region")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
