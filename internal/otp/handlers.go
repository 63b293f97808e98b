package otp

import (
	"encoding/json"
	"net/http"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.GenerateOTP(r.Context(), &req)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.VerifyOTP(r.Context(), &req); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	utils.MessageResponse(w, "Code verified", http.StatusOK)
}
