package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/services"
	"travelsuzBack/utils"
)

type TravelHandler struct {
	Service  *services.TravelService
	Comments *services.CommentService
	Storage  utils.Storage
}

func (h *TravelHandler) GetTravels(w http.ResponseWriter, r *http.Request) {
	regionID, _ := strconv.Atoi(r.URL.Query().Get("region"))
	travels, err := h.Service.GetTravels(r.Context(), regionID)
	if err != nil {
		log.Printf("GetTravels error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch travels")
		return
	}

	lang := language(r)
	views := make([]models.TravelView, 0, len(travels))
	for _, travel := range travels {
		views = append(views, travel.Localize(lang))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *TravelHandler) GetTravelByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	travel, err := h.Service.GetTravelDetail(r.Context(), id)
	if errors.Is(err, models.ErrTravelNotFound) {
		writeError(w, http.StatusNotFound, "Travel not found")
		return
	}
	if err != nil {
		log.Printf("GetTravelByID error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch travel")
		return
	}
	writeJSON(w, http.StatusOK, travel.Localize(language(r)))
}

func (h *TravelHandler) CreateTravel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	var travel models.Travel
	overlayLocalized(form, "title", &travel.Title)
	overlayLocalized(form, "description", &travel.Description)
	overlayLocalized(form, "address", &travel.Address)
	overlayText(form, "place_type", &travel.PlaceType)
	if price, ok := formValue(form, "ticket_price"); ok {
		travel.TicketPrice = &price
	}
	travel.RegionID, _ = strconv.Atoi(r.FormValue("region"))

	if travel.Title.Uz == "" {
		writeError(w, http.StatusBadRequest, "title_uz is required")
		return
	}

	location, err := overlayLocation(form, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	travel.Location = location

	files := collectImageFiles(form, uploadedImagesField, "images")
	if travel.Images, err = saveUploadedImages(h.Storage, files, "travels"); err != nil {
		log.Printf("CreateTravel image upload error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save uploaded images")
		return
	}

	created, err := h.Service.CreateTravel(r.Context(), travel)
	switch {
	case errors.Is(err, models.ErrInvalidPrice):
		writeError(w, http.StatusUnprocessableEntity, "Ticket price must be a positive number")
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid region reference")
	case err != nil:
		log.Printf("CreateTravel error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create travel")
	default:
		writeJSON(w, http.StatusCreated, created)
	}
}

func (h *TravelHandler) UpdateTravel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	travel, err := h.Service.GetTravelByID(r.Context(), id)
	if errors.Is(err, models.ErrTravelNotFound) {
		writeError(w, http.StatusNotFound, "Travel not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch travel")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	overlayLocalized(form, "title", &travel.Title)
	overlayLocalized(form, "description", &travel.Description)
	overlayLocalized(form, "address", &travel.Address)
	overlayText(form, "place_type", &travel.PlaceType)
	if price, ok := formValue(form, "ticket_price"); ok {
		travel.TicketPrice = &price
	}
	if region, ok := formValue(form, "region"); ok {
		travel.RegionID, _ = strconv.Atoi(region)
	}

	if travel.Location, err = overlayLocation(form, travel.Location); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	replaceImages := imagesProvided(form)
	var newImages []models.Image
	if replaceImages {
		files := collectImageFiles(form, uploadedImagesField)
		if newImages, err = saveUploadedImages(h.Storage, files, "travels"); err != nil {
			log.Printf("UpdateTravel image upload error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save uploaded images")
			return
		}
	}

	updated, err := h.Service.UpdateTravel(r.Context(), travel, replaceImages, newImages)
	switch {
	case errors.Is(err, models.ErrInvalidPrice):
		writeError(w, http.StatusUnprocessableEntity, "Ticket price must be a positive number")
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid region reference")
	case err != nil:
		log.Printf("UpdateTravel error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update travel")
	default:
		writeJSON(w, http.StatusOK, updated)
	}
}

func (h *TravelHandler) DeleteTravel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	err = h.Service.DeleteTravel(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrTravelNotFound):
		writeError(w, http.StatusNotFound, "Travel not found")
	case err != nil:
		log.Printf("DeleteTravel error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete travel")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Travel deleted"})
	}
}

func (h *TravelHandler) CreateTravelComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	comment.ParentID = id

	created, err := h.Comments.CreateComment(r.Context(), comment)
	switch {
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusNotFound, "Travel not found")
	case err != nil:
		log.Printf("CreateTravelComment error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create comment")
	default:
		writeJSON(w, http.StatusCreated, created.ForTravel())
	}
}

func (h *TravelHandler) GetTravelComments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	comments, err := h.Comments.GetCommentsByParent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	views := make([]models.TravelComment, 0, len(comments))
	for _, comment := range comments {
		views = append(views, comment.ForTravel())
	}
	writeJSON(w, http.StatusOK, views)
}
