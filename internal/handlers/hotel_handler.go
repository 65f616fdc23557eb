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

type HotelHandler struct {
	Service  *services.HotelService
	Comments *services.CommentService
	Storage  utils.Storage
}

func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	regionID, _ := strconv.Atoi(r.URL.Query().Get("region"))
	hotels, err := h.Service.GetHotels(r.Context(), regionID)
	if err != nil {
		log.Printf("GetHotels error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}

	lang := language(r)
	views := make([]models.HotelView, 0, len(hotels))
	for _, hotel := range hotels {
		views = append(views, hotel.Localize(lang))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	hotel, err := h.Service.GetHotelDetail(r.Context(), id)
	if errors.Is(err, models.ErrHotelNotFound) {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		log.Printf("GetHotelByID error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotel")
		return
	}
	writeJSON(w, http.StatusOK, hotel.Localize(language(r)))
}

func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	var hotel models.Hotel
	overlayLocalized(form, "title", &hotel.Title)
	overlayLocalized(form, "description", &hotel.Description)
	overlayLocalized(form, "address", &hotel.Address)
	overlayText(form, "phone_number", &hotel.PhoneNumber)
	overlayText(form, "phone_number_2", &hotel.PhoneNumber2)
	overlayText(form, "price", &hotel.Price)
	hotel.RegionID, _ = strconv.Atoi(r.FormValue("region"))

	if hotel.Title.Uz == "" {
		writeError(w, http.StatusBadRequest, "title_uz is required")
		return
	}

	location, err := overlayLocation(form, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hotel.Location = location

	files := collectImageFiles(form, uploadedImagesField, "images")
	if hotel.Images, err = saveUploadedImages(h.Storage, files, "hotels"); err != nil {
		log.Printf("CreateHotel image upload error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save uploaded images")
		return
	}

	createdHotel, err := h.Service.CreateHotel(r.Context(), hotel)
	switch {
	case errors.Is(err, models.ErrInvalidPrice):
		writeError(w, http.StatusUnprocessableEntity, "Price must be a positive number, e.g. 150000")
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid region reference")
	case err != nil:
		log.Printf("CreateHotel error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create hotel")
	default:
		writeJSON(w, http.StatusCreated, createdHotel)
	}
}

func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	hotel, err := h.Service.GetHotelByID(r.Context(), id)
	if errors.Is(err, models.ErrHotelNotFound) {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotel")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	overlayLocalized(form, "title", &hotel.Title)
	overlayLocalized(form, "description", &hotel.Description)
	overlayLocalized(form, "address", &hotel.Address)
	overlayText(form, "phone_number", &hotel.PhoneNumber)
	overlayText(form, "phone_number_2", &hotel.PhoneNumber2)
	overlayText(form, "price", &hotel.Price)
	if region, ok := formValue(form, "region"); ok {
		hotel.RegionID, _ = strconv.Atoi(region)
	}

	if hotel.Location, err = overlayLocation(form, hotel.Location); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	replaceImages := imagesProvided(form)
	var newImages []models.Image
	if replaceImages {
		files := collectImageFiles(form, uploadedImagesField)
		if newImages, err = saveUploadedImages(h.Storage, files, "hotels"); err != nil {
			log.Printf("UpdateHotel image upload error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save uploaded images")
			return
		}
	}

	updatedHotel, err := h.Service.UpdateHotel(r.Context(), hotel, replaceImages, newImages)
	switch {
	case errors.Is(err, models.ErrInvalidPrice):
		writeError(w, http.StatusUnprocessableEntity, "Price must be a positive number, e.g. 150000")
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid region reference")
	case err != nil:
		log.Printf("UpdateHotel error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update hotel")
	default:
		writeJSON(w, http.StatusOK, updatedHotel)
	}
}

func (h *HotelHandler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	err = h.Service.DeleteHotel(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrHotelNotFound):
		writeError(w, http.StatusNotFound, "Hotel not found")
	case err != nil:
		log.Printf("DeleteHotel error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete hotel")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Hotel deleted"})
	}
}

func (h *HotelHandler) CreateHotelComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hotel ID")
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
		writeError(w, http.StatusNotFound, "Hotel not found")
	case err != nil:
		log.Printf("CreateHotelComment error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create comment")
	default:
		writeJSON(w, http.StatusCreated, created.ForHotel())
	}
}

func (h *HotelHandler) GetHotelComments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	comments, err := h.Comments.GetCommentsByParent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	views := make([]models.HotelComment, 0, len(comments))
	for _, comment := range comments {
		views = append(views, comment.ForHotel())
	}
	writeJSON(w, http.StatusOK, views)
}
