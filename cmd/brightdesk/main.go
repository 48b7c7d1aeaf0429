package main

import (
	"log"

	"github.com/brightdesk-dev/brightdesk/db"
	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/brightdesk-dev/brightdesk/internal/config"
	"github.com/brightdesk-dev/brightdesk/internal/router"
	"github.com/brightdesk-dev/brightdesk/internal/scheduler"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	sweep := scheduler.New(services.NewInvoiceService(database), cfg.SweepInterval)
	sweep.Start()
	defer sweep.Stop()

	r := router.New(database, cfg, tokens)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
