package profile

import (
	"github.com/gorilla/mux"

	"github.com/campusmatch/campusmatch-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/profiles").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/me", handler.GetMyProfile).Methods("GET")
	api.HandleFunc("/me", handler.CreateProfile).Methods("POST")
	api.HandleFunc("/me", handler.UpdateProfile).Methods("PUT")
	api.HandleFunc("/{userId}", handler.GetProfile).Methods("GET")
	api.HandleFunc("/{userId}/block", handler.BlockUser).Methods("POST")
	api.HandleFunc("/{userId}/block", handler.UnblockUser).Methods("DELETE")
}
