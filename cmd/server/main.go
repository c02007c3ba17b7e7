package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lukav-dev/userbase/internal/api"
	"github.com/lukav-dev/userbase/internal/config"
	"github.com/lukav-dev/userbase/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// @title Userbase API
// @version 1.0
// @description CRUD service for user records
// @BasePath /
func main() {
	// Connect to database
	repositories.ConnectDatabase()

	port := config.Envs.Port
	store := repositories.NewUserStore(repositories.DB)
	handler := api.SetupRouter(store)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server is running on http://localhost:%s", port)
		log.Printf("API documentation: http://localhost:%s/docs/", port)
		log.Printf("Health check: http://localhost:%s/health", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server closed")
}
