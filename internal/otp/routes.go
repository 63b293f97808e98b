package otp

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the OTP endpoints. These are unauthenticated:
// codes are requested before the caller holds a session.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1/otp").Subrouter()

	api.HandleFunc("/request", handler.RequestOTP).Methods("POST")
	api.HandleFunc("/verify", handler.VerifyOTP).Methods("POST")
}
