package likes

import (
	"encoding/json"
	"net/http"
	"strconv"

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

func (h *Handler) CreateLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CreateLike(r.Context(), userID, req.ToUserID, req.IsSuperlike)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, result)
}

func (h *Handler) GetLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	listType := r.URL.Query().Get("type")
	if listType == "" {
		listType = "sent"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	results, err := h.service.GetLikes(r.Context(), userID, listType, limit, offset)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	toUserID, ok := pathUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.RemoveLike(r.Context(), userID, userID, toUserID); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.MessageResponse(w, "Like removed", http.StatusOK)
}

func (h *Handler) GetMutualLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID, ok := pathUserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	mutual, err := h.service.GetMutualLike(r.Context(), userID, otherID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, mutual)
}

func (h *Handler) SuperlikesRemaining(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	remaining, err := h.service.SuperlikesRemaining(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, SuperlikesRemainingResponse{
		Remaining: remaining,
		DailyCap:  SuperlikeDailyCap,
	})
}

func pathUserID(r *http.Request) (string, bool) {
	raw := mux.Vars(r)["userId"]
	if _, err := uuid.Parse(raw); err != nil {
		return "", false
	}
	return raw, true
}
