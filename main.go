package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MatthewMangion/quantumblack-ai-platform/config"
	"github.com/MatthewMangion/quantumblack-ai-platform/handler"
	"github.com/MatthewMangion/quantumblack-ai-platform/middleware"
	"github.com/MatthewMangion/quantumblack-ai-platform/pkg/logger"
	"github.com/MatthewMangion/quantumblack-ai-platform/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize stores. Engagement data is seeded fresh on every start;
	// uploaded documents persist across restarts.
	store := service.NewSeededStore()
	documents := service.NewDocumentStore(cfg.Documents.Path)
	slog.Info("stores initialized",
		"clients", len(store.Clients()),
		"documents", documents.Count(),
		"document_path", cfg.Documents.Path,
	)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(store)
	engagementHandler := handler.NewEngagementHandler(store)
	strategyHandler := handler.NewStrategyHandler(store)
	documentHandler := handler.NewDocumentHandler(store, documents, cfg.Documents.MaxUploadBytes)
	workshopHandler := handler.NewWorkshopHandler(store)
	surveyHandler := handler.NewSurveyHandler(store)
	dashboardHandler := handler.NewDashboardHandler(store)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())     // Request ID for tracing
	router.Use(middleware.Recovery())      // Panic recovery
	router.Use(middleware.RequestLogger()) // Access logging
	router.Use(corsMiddleware())           // CORS
	router.Use(middleware.Metrics())       // Prometheus request metrics
	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, time.Minute))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.GET("/phase-templates", clientHandler.Templates)

		api.GET("/clients/:id/phases", engagementHandler.Phases)
		api.GET("/clients/:id/stats", engagementHandler.Stats)
		api.GET("/clients/:id/deliverables", engagementHandler.Deliverables)
		api.PUT("/phases/:id/activities/:activityId/status", engagementHandler.UpdateActivityStatus)
		api.PUT("/phases/:id/deliverables/:deliverableId/status", engagementHandler.UpdateDeliverableStatus)

		api.GET("/clients/:id/usecases", strategyHandler.UseCases)
		api.PUT("/usecases/:id/status", strategyHandler.UpdateUseCaseStatus)
		api.GET("/clients/:id/strategy-documents", strategyHandler.Documents)
		api.PUT("/strategy-documents/:id/status", strategyHandler.UpdateDocumentStatus)

		api.GET("/clients/:id/documents", documentHandler.List)
		api.POST("/clients/:id/documents", documentHandler.Upload)
		api.GET("/documents/:id", documentHandler.Get)
		api.GET("/documents/:id/download", documentHandler.Download)
		api.DELETE("/documents/:id", documentHandler.Delete)

		api.GET("/workshops", workshopHandler.List)
		api.GET("/workshops/stats", workshopHandler.Stats)

		api.GET("/survey/questions", surveyHandler.Questions)
		api.GET("/survey/responses", surveyHandler.Responses)
		api.GET("/survey/readiness", surveyHandler.Readiness)

		api.GET("/dashboard/metrics", dashboardHandler.Metrics)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
