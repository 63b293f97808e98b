package discover

import (
	"github.com/gorilla/mux"

	"github.com/campusmatch/campusmatch-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/discover").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetFeed).Methods("GET")
}
