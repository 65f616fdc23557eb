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

type RestaurantHandler struct {
	Service  *services.RestaurantService
	Comments *services.CommentService
	Storage  utils.Storage
}

func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	regionID, _ := strconv.Atoi(r.URL.Query().Get("region"))
	restaurants, err := h.Service.GetRestaurants(r.Context(), regionID)
	if err != nil {
		log.Printf("GetRestaurants error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch restaurants")
		return
	}

	lang := language(r)
	views := make([]models.RestaurantView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		views = append(views, restaurant.Localize(lang))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	restaurant, err := h.Service.GetRestaurantDetail(r.Context(), id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		log.Printf("GetRestaurantByID error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch restaurant")
		return
	}
	writeJSON(w, http.StatusOK, restaurant.Localize(language(r)))
}

func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	var restaurant models.Restaurant
	overlayLocalized(form, "name", &restaurant.Name)
	overlayLocalized(form, "description", &restaurant.Description)
	overlayLocalized(form, "address", &restaurant.Address)
	overlayLocalized(form, "category", &restaurant.Category)
	overlayLocalized(form, "price_range", &restaurant.PriceRange)
	overlayText(form, "phone_number", &restaurant.PhoneNumber)
	overlayText(form, "opening_time", &restaurant.OpeningTime)
	overlayText(form, "closing_time", &restaurant.ClosingTime)
	restaurant.RegionID, _ = strconv.Atoi(r.FormValue("region"))

	if restaurant.Name.Uz == "" {
		writeError(w, http.StatusBadRequest, "name_uz is required")
		return
	}

	location, err := overlayLocation(form, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	restaurant.Location = location

	files := collectImageFiles(form, uploadedImagesField, "images")
	if restaurant.Images, err = saveUploadedImages(h.Storage, files, "restaurants"); err != nil {
		log.Printf("CreateRestaurant image upload error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save uploaded images")
		return
	}

	created, err := h.Service.CreateRestaurant(r.Context(), restaurant)
	switch {
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid region reference")
	case err != nil:
		log.Printf("CreateRestaurant error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create restaurant")
	default:
		writeJSON(w, http.StatusCreated, created)
	}
}

func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	restaurant, err := h.Service.GetRestaurantByID(r.Context(), id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch restaurant")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	overlayLocalized(form, "name", &restaurant.Name)
	overlayLocalized(form, "description", &restaurant.Description)
	overlayLocalized(form, "address", &restaurant.Address)
	overlayLocalized(form, "category", &restaurant.Category)
	overlayLocalized(form, "price_range", &restaurant.PriceRange)
	overlayText(form, "phone_number", &restaurant.PhoneNumber)
	overlayText(form, "opening_time", &restaurant.OpeningTime)
	overlayText(form, "closing_time", &restaurant.ClosingTime)
	if region, ok := formValue(form, "region"); ok {
		restaurant.RegionID, _ = strconv.Atoi(region)
	}

	if restaurant.Location, err = overlayLocation(form, restaurant.Location); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	replaceImages := imagesProvided(form)
	var newImages []models.Image
	if replaceImages {
		files := collectImageFiles(form, uploadedImagesField)
		if newImages, err = saveUploadedImages(h.Storage, files, "restaurants"); err != nil {
			log.Printf("UpdateRestaurant image upload error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save uploaded images")
			return
		}
	}

	updated, err := h.Service.UpdateRestaurant(r.Context(), restaurant, replaceImages, newImages)
	switch {
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusUnprocessableEntity, "Invalid region reference")
	case err != nil:
		log.Printf("UpdateRestaurant error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update restaurant")
	default:
		writeJSON(w, http.StatusOK, updated)
	}
}

func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	err = h.Service.DeleteRestaurant(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrRestaurantNotFound):
		writeError(w, http.StatusNotFound, "Restaurant not found")
	case err != nil:
		log.Printf("DeleteRestaurant error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete restaurant")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Restaurant deleted"})
	}
}

func (h *RestaurantHandler) CreateRestaurantComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant ID")
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
		writeError(w, http.StatusNotFound, "Restaurant not found")
	case err != nil:
		log.Printf("CreateRestaurantComment error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create comment")
	default:
		writeJSON(w, http.StatusCreated, created.ForRestaurant())
	}
}

func (h *RestaurantHandler) GetRestaurantComments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	comments, err := h.Comments.GetCommentsByParent(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	views := make([]models.RestaurantComment, 0, len(comments))
	for _, comment := range comments {
		views = append(views, comment.ForRestaurant())
	}
	writeJSON(w, http.StatusOK, views)
}
