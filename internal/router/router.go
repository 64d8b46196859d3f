package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/auth"
	"github.com/raves21/azura-backend/internal/handlers"
	"github.com/raves21/azura-backend/internal/middleware"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/notifications"
	"github.com/raves21/azura-backend/internal/privacy"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/config"
	"github.com/raves21/azura-backend/pkg/mailer"
	"github.com/raves21/azura-backend/pkg/metrics"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, mail mailer.Mailer, m *metrics.Metrics, log *logrus.Logger) {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Session{},
		&models.Follow{},
		&models.Post{},
		&models.Collection{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
		&models.NotificationActor{},
		&models.OTC{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Info("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	accountRepo := repositories.NewPostgresAccountRepository(db)
	sessionRepo := repositories.NewPostgresSessionRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	collectionRepo := repositories.NewPostgresCollectionRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	otcRepo := repositories.NewPostgresOTCRepository(db)

	// --- Core services ---
	verifier := auth.NewBcryptVerifier()
	sessionManager := auth.NewSessionManager(accountRepo, sessionRepo, verifier, cfg.SessionLimit, cfg.SessionTokenDuration, m, log)
	tokenService := auth.NewTokenService(sessionRepo, accountRepo, cfg.AccessTokenSecret, cfg.AccessTokenDuration, m)
	authorizer := privacy.NewAuthorizer(followRepo)
	deduplicator := notifications.NewDeduplicator(notificationRepo, m, log)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(accountRepo, sessionManager, verifier, cfg)
	authHandler.RegisterAuthRoutes(authGroup)

	otcHandler := handlers.NewOTCHandler(otcRepo, mail, verifier, log)
	otcHandler.RegisterOTCRoutes(authGroup)

	cronHandler := handlers.NewCronHandler(sessionRepo, otcRepo, log)
	cronHandler.RegisterCronRoutes(e.Group("/api/v1"))

	// Token renewal authenticates by session cookie, not by access token.
	refreshGroup := e.Group("/api/v1")
	refreshHandler := handlers.NewRefreshHandler(tokenService, cfg)
	refreshHandler.RegisterRefreshRoutes(refreshGroup)

	// Session management is gated by the session cookie itself so a device
	// can enumerate and evict sessions without first minting an access token.
	sessionGroup := e.Group("/api/v1")
	sessionGroup.Use(middleware.SessionAuth(sessionRepo, accountRepo, cfg.IsProd))
	sessionHandler := handlers.NewSessionHandler(sessionManager)
	sessionHandler.RegisterSessionRoutes(sessionGroup)

	// --- Protected routes (require a valid access token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuth(tokenService, sessionRepo, cfg.IsProd))

	api.PUT("/auth/password", authHandler.UpdatePassword)

	followHandler := handlers.NewFollowHandler(followRepo, deduplicator, log)
	followHandler.RegisterFollowRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, likeRepo, commentRepo, authorizer, deduplicator, log)
	postHandler.RegisterPostRoutes(api)

	collectionHandler := handlers.NewCollectionHandler(collectionRepo, authorizer)
	collectionHandler.RegisterCollectionRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Info("All routes configured.")
}
