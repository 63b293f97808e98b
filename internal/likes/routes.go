package likes

import (
	"github.com/gorilla/mux"

	"github.com/campusmatch/campusmatch-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/likes").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.CreateLike).Methods("POST")
	api.HandleFunc("", handler.GetLikes).Methods("GET")
	api.HandleFunc("/superlikes/remaining", handler.SuperlikesRemaining).Methods("GET")
	api.HandleFunc("/mutual/{userId}", handler.GetMutualLike).Methods("GET")
	api.HandleFunc("/{userId}", handler.RemoveLike).Methods("DELETE")
}
