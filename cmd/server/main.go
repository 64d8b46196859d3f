package main

import (
	"github.com/labstack/echo/v4"

	"github.com/raves21/azura-backend/internal/router"
	"github.com/raves21/azura-backend/pkg/config"
	"github.com/raves21/azura-backend/pkg/logger"
	"github.com/raves21/azura-backend/pkg/mailer"
	"github.com/raves21/azura-backend/pkg/metrics"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// Initialize database connection
	db, err := config.InitDB(log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db, log)

	// Mailer for one-time codes
	mail, err := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.OTCFromEmail)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	m := metrics.Init()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg, mail, m, log)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
