package api

import (
	"log"
	"net/http"

	_ "github.com/lukav-dev/userbase/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lukav-dev/userbase/internal/api/handlers"
	"github.com/lukav-dev/userbase/internal/api/middleware"
	"github.com/lukav-dev/userbase/internal/config"
	"github.com/lukav-dev/userbase/internal/repositories"
	"github.com/rs/cors"
)

func SetupRouter(store repositories.UserStore) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	mux.HandleFunc("GET /health", handlers.HealthCheck)
	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	users := handlers.NewUserHandler(store)
	mux.HandleFunc("GET /api/users", users.ListUsers)
	mux.HandleFunc("POST /api/users", users.CreateUser)
	mux.HandleFunc("GET /api/users/{id}", users.GetUser)
	mux.HandleFunc("PUT /api/users/{id}", users.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", users.DeleteUser)

	log.Println("Router initialized")
	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	handler = middleware.RequestID(handler)
	return handler
}
