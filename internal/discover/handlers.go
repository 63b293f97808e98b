package discover

import (
	"net/http"
	"strconv"

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

// GetFeed serves the ranked discovery feed page
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > MaxLimit {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be between 1 and 50")
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "offset must not be negative")
			return
		}
		offset = parsed
	}

	feed, err := h.service.GetDiscoverProfiles(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, feed)
}
