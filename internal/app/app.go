package app

import (
	"context"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/handlers"
	"inkwell/internal/repository"
	"inkwell/internal/routes"
	"inkwell/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewSurrealConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	postRepo := repository.NewPostRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo, userRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, authService)
	userHandler := handlers.NewUserHandler(authService, postService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, postHandler, userHandler)

	return router, nil
}
