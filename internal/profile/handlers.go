package profile

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campusmatch/campusmatch-backend/internal/auth"
	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.service.GetMyProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.CreateProfile(r.Context(), userID, &req)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, ok := pathUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	p, err := h.service.GetProfile(r.Context(), userID, targetID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

func (h *Handler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, ok := pathUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.BlockUser(r.Context(), userID, targetID); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.MessageResponse(w, "User blocked", http.StatusOK)
}

func (h *Handler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, ok := pathUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.UnblockUser(r.Context(), userID, targetID); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.MessageResponse(w, "User unblocked", http.StatusOK)
}

// pathUserID extracts and validates the {userId} path variable
func pathUserID(r *http.Request) (string, bool) {
	raw := mux.Vars(r)["userId"]
	if _, err := uuid.Parse(raw); err != nil {
		return "", false
	}
	return raw, true
}
