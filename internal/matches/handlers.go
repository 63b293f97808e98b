package matches

import (
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

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	results, err := h.service.GetMatches(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *Handler) Unmatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	if err := h.service.Unmatch(r.Context(), matchID, userID); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.MessageResponse(w, "Unmatched", http.StatusOK)
}

func (h *Handler) CheckMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID := mux.Vars(r)["userId"]
	if _, err := uuid.Parse(otherID); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	matched, err := h.service.IsMatched(r.Context(), userID, otherID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"matched": matched})
}
