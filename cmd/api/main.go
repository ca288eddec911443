package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/redade943-code/FabiansWelt/internal/config"
	"github.com/redade943-code/FabiansWelt/internal/db"
	"github.com/redade943-code/FabiansWelt/internal/handlers"
	"github.com/redade943-code/FabiansWelt/internal/middleware"
	"github.com/redade943-code/FabiansWelt/internal/pipeline"
	"github.com/redade943-code/FabiansWelt/internal/storage"
	"github.com/redade943-code/FabiansWelt/internal/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	cfg := config.Load()

	// With incomplete configuration the service stays up in a degraded
	// mode: reads return an empty list, submissions are refused with a
	// stable "not configured" message, and /api/v1/status reports it.
	var recordStore *store.Store
	var uploadPipeline *pipeline.Pipeline

	if cfg.Configured() {
		postgresDB, err := db.InitPostgres(cfg)
		if err != nil {
			logger.Fatalw("Failed to initialize PostgreSQL", "error", err)
		}
		defer postgresDB.Close()

		// Redis is an optional snapshot cache; run without it on failure.
		redisClient, err := db.InitRedis(cfg)
		if err != nil {
			logger.Warnw("Redis unavailable, running without snapshot cache", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}

		objectStore, err := storage.New(context.Background(), cfg)
		if err != nil {
			logger.Fatalw("Failed to initialize object storage", "error", err)
		}

		recordStore = store.New(postgresDB, redisClient, logger)
		uploadPipeline = pipeline.New(objectStore, recordStore, logger)

		recordStore.LoadAll(context.Background())

		// Periodic refresh keeps the snapshot honest even if a write
		// from elsewhere bypasses this process.
		scheduler := cron.New()
		if _, err := scheduler.AddFunc("@every 5m", func() {
			recordStore.Refresh(context.Background())
		}); err != nil {
			logger.Fatalw("Failed to schedule snapshot refresh", "error", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		logger.Warnw("Backend not configured, starting in degraded mode")
		uploadPipeline = pipeline.New(nil, nil, logger)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Open CORS: anyone may read, anyone may insert. Deliberate for a
	// small demo deployment, mirrored by the database policy.
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	recordsHandler := handlers.NewRecordsHandler(uploadPipeline, recordStore, logger)
	countryHandler := handlers.NewCountryHandler(logger)

	// Define routes
	v1 := router.Group("/api/v1")
	{
		records := v1.Group("/records")
		{
			records.GET("", recordsHandler.ListRecords)
			records.POST("", recordsHandler.CreateRecord)
		}

		countries := v1.Group("/countries")
		{
			countries.POST("/resolve", countryHandler.ResolveCountry)
		}

		v1.GET("/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"configured": cfg.Configured()})
		})
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("Server starting", "addr", cfg.Addr, "configured", cfg.Configured())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("Shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("Server forced to shutdown", "error", err)
	}

	logger.Infow("Server exited")
}
