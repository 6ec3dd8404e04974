package routes

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	userHandler *handlers.UserHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts/search", postHandler.Search).Methods("GET")
	api.HandleFunc("/posts/tags/{tag}", postHandler.ListByTag).Methods("GET")
	api.HandleFunc("/posts/{id}", postHandler.GetByID).Methods("GET")

	api.HandleFunc("/users/{id}/posts", userHandler.Posts).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth)

	protected.HandleFunc("/posts", postHandler.Create).Methods("POST")
	protected.HandleFunc("/posts/preview", postHandler.Preview).Methods("POST")
	protected.HandleFunc("/posts/{id}", postHandler.Update).Methods("PUT")
	protected.HandleFunc("/posts/{id}", postHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/posts/{id}/publish", postHandler.Publish).Methods("POST")
	protected.HandleFunc("/posts/{id}/like", postHandler.Like).Methods("POST")
	protected.HandleFunc("/posts/{id}/comments", postHandler.AddComment).Methods("POST")

	protected.HandleFunc("/users/profile", userHandler.Profile).Methods("GET")
}
