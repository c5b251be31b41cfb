package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quran-quest/quran-quest-api/pkg/response"
)

type AuthHandler struct {
	service AuthService
}

func NewHandler(service AuthService) AuthHandler {
	return AuthHandler{service: service}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"email":    "Email is required",
			"username": "Username is required",
			"password": "Password is required",
		})
		return
	}

	usr, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(w, http.StatusBadRequest, "User with this email or username already exists", err.Error())
			return
		}
		response.Error(w, http.StatusBadRequest, "Failed to create user", err.Error())
		return
	}

	response.Created(w, usr, "User registered successfully")
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"email":    "Email or username is required",
			"password": "Password is required",
		})
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "Incorrect email/username or password", err.Error())
		return
	}

	response.Success(w, user, "Ok")
}

func (h *AuthHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	user, err := h.service.Refresh(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "Failed to refresh token", err.Error())
		return
	}

	response.Success(w, map[string]string{"token": user.Token}, "Ok")
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusNotFound, "User not found", err.Error())
		return
	}

	response.Success(w, user, "Ok")
}

func (h *AuthHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(w, http.StatusBadRequest, "Username already taken", err.Error())
			return
		}
		response.Error(w, http.StatusBadRequest, "Failed to update profile", err.Error())
		return
	}

	response.Success(w, user, "Profile updated successfully")
}

func (h *AuthHandler) SearchUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	username := chi.URLParam(r, "username")
	profile, err := h.service.SearchUser(r.Context(), userID, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found", err.Error())
			return
		}
		response.Error(w, http.StatusBadRequest, "Failed to search user", err.Error())
		return
	}

	response.Success(w, profile, "Ok")
}

func (h *AuthHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get stats", err.Error())
		return
	}

	response.Success(w, stats, "Ok")
}
