package matches

import (
	"github.com/gorilla/mux"

	"github.com/campusmatch/campusmatch-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matches").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetMatches).Methods("GET")
	api.HandleFunc("/check/{userId}", handler.CheckMatch).Methods("GET")
	api.HandleFunc("/{id}/unmatch", handler.Unmatch).Methods("POST")
}
