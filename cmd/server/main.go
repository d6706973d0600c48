package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/anonto42/content-engagement/backend/internal/messaging"
	"github.com/anonto42/content-engagement/backend/internal/router"
	"github.com/anonto42/content-engagement/backend/internal/services"
	"github.com/anonto42/content-engagement/backend/pkg/config"
	"github.com/anonto42/content-engagement/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Connect to the message broker with bounded retries; the service cannot
	// run without its lifecycle feed.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := messaging.NewBroker(cfg.KafkaBrokers)
	if err := broker.Connect(ctx, cfg.BrokerConnectRetries, time.Duration(cfg.BrokerConnectDelaySec)*time.Second); err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	defer broker.Close()

	publisher := messaging.NewKafkaEventPublisher(broker, cfg.ContentEventsTopic, cfg.ContentRoutingPrefix)
	engagementService := services.NewEngagementService(db.Postgres, publisher)

	// Start the post lifecycle consumer
	consumer := messaging.NewPostEventConsumer(broker, cfg.PostEventsTopic, cfg.PostEventsGroup, engagementService)
	go func() {
		if err := consumer.Run(ctx); err != nil {
			log.Printf("Post event consumer stopped: %v", err)
		}
	}()

	// Expose Prometheus metrics on the metrics port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, broker, engagementService, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
