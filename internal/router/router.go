package router

import (
	"log"

	"github.com/anonto42/content-engagement/backend/internal/handlers"
	"github.com/anonto42/content-engagement/backend/internal/messaging"
	"github.com/anonto42/content-engagement/backend/internal/middleware"
	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/anonto42/content-engagement/backend/internal/services"
	"github.com/anonto42/content-engagement/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, broker *messaging.Broker, engagementService *services.EngagementService, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Like{},
		&models.Comment{},
		&models.PostStats{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	healthHandler := handlers.NewHealthHandler(broker)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "content-engagement",
			"status":  "running",
		})
	})

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(engagementService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(engagementService, cfg)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Stats routes
	statsHandler := handlers.NewStatsHandler(engagementService)
	statsHandler.RegisterStatsRoutes(api)
	log.Println("Stats routes configured.")

	log.Println("All routes configured.")
}
