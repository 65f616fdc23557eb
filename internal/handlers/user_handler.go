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

type UserHandler struct {
	Service *services.UserService
	Storage utils.Storage
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	var user models.User
	overlayText(form, "username", &user.Username)
	overlayText(form, "email", &user.Email)
	overlayText(form, "first_name", &user.FirstName)
	overlayText(form, "last_name", &user.LastName)
	overlayText(form, "phone_number", &user.PhoneNumber)
	password := r.FormValue("password")

	if user.Username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	avatars := collectImageFiles(form, "image", "avatar")
	if len(avatars) > 0 {
		saved, err := saveUploadedImages(h.Storage, avatars[:1], "avatars")
		if err != nil {
			log.Printf("Register avatar upload error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save avatar")
			return
		}
		user.AvatarPath = &saved[0].Path
	}

	resp, err := h.Service.Register(r.Context(), user, password)
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		writeError(w, http.StatusUnprocessableEntity, "A user with that username already exists")
	case err != nil:
		log.Printf("Register error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
	default:
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := h.Service.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	case err != nil:
		log.Printf("Login error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign in")
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req models.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	err := h.Service.Logout(r.Context(), req.Refresh)
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		writeError(w, http.StatusBadRequest, "Invalid or expired refresh token")
	case err != nil:
		log.Printf("Logout error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign out")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Signed out successfully"})
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Service.GetUserByID(r.Context(), userID)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case err != nil:
		log.Printf("GetMe error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

// UpdateUser edits the caller's own account. Staff may target another account
// with ?id=.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := r.Context().Value("user_id").(int)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	role, _ := r.Context().Value("role").(string)

	targetID := callerID
	if idParam := r.URL.Query().Get("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		if id != callerID && role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "Staff access required to edit other users")
			return
		}
		targetID = id
	}

	user, err := h.Service.GetUserByID(r.Context(), targetID)
	if errors.Is(err, models.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	overlayText(form, "username", &user.Username)
	overlayText(form, "email", &user.Email)
	overlayText(form, "first_name", &user.FirstName)
	overlayText(form, "last_name", &user.LastName)
	overlayText(form, "phone_number", &user.PhoneNumber)
	newPassword := r.FormValue("password")

	avatars := collectImageFiles(form, "image", "avatar")
	if len(avatars) > 0 {
		saved, err := saveUploadedImages(h.Storage, avatars[:1], "avatars")
		if err != nil {
			log.Printf("UpdateUser avatar upload error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save avatar")
			return
		}
		user.AvatarPath = &saved[0].Path
	}

	updated, err := h.Service.UpdateUser(r.Context(), user, newPassword)
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		writeError(w, http.StatusUnprocessableEntity, "A user with that username already exists")
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case err != nil:
		log.Printf("UpdateUser error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update user")
	default:
		writeJSON(w, http.StatusOK, updated)
	}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetUsers(r.Context())
	if err != nil {
		log.Printf("GetUsers error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := r.Context().Value("user_id").(int)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	err = h.Service.DeleteUser(r.Context(), callerID, targetID)
	switch {
	case errors.Is(err, models.ErrSelfDelete):
		writeError(w, http.StatusForbidden, "You cannot delete your own account")
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case err != nil:
		log.Printf("DeleteUser error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete user")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"detail": "User deleted"})
	}
}
