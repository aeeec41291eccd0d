package main

import (
	"fmt"
	"log"

	"github.com/ecosaver/energy-server/internal/config"
	"github.com/ecosaver/energy-server/internal/handlers"
	"github.com/ecosaver/energy-server/internal/middleware"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Seed the admin account when configured
	if err := repository.SeedAdmin(db, &cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Initialize JWT auth for the admin surface
	jwtAuth := middleware.NewJWTAuth(cfg.JWT.Secret, cfg.JWT.ExpireHour)

	store := repository.NewStore(db)
	r := handlers.NewRouter(store, jwtAuth)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
