package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/api"
	"github.com/aaraainfra/weekly-mis/internal/auth"
	"github.com/aaraainfra/weekly-mis/internal/cache"
	"github.com/aaraainfra/weekly-mis/internal/config"
	"github.com/aaraainfra/weekly-mis/internal/narrative"
	"github.com/aaraainfra/weekly-mis/internal/repository/postgres"
	"github.com/aaraainfra/weekly-mis/internal/service"
	"github.com/aaraainfra/weekly-mis/internal/storage"
	"github.com/aaraainfra/weekly-mis/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize cache; fall back to noop if redis is unreachable
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("report cache unavailable, continuing without it")
		reportCache = cache.NewNoopReportCache()
	}

	// Initialize services
	reportRepo := postgres.NewReportRepository(db)
	reportService := service.NewReportService(reportRepo, reportCache)

	generator, err := narrative.NewClient(context.Background(), cfg.Narrative)
	if err != nil {
		log.Fatalf("Failed to initialize narrative client: %v", err)
	}

	var archive storage.ReportArchive = storage.NoopArchive{}
	if cfg.Archive.Enabled {
		archive, err = storage.NewMinioArchive(cfg.Archive)
		if err != nil {
			log.Fatalf("Failed to initialize report archive: %v", err)
		}
	}

	tokens := auth.NewTokenManager(cfg.Auth)

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{
		Reports:   reportService,
		Generator: generator,
		Archive:   archive,
		Tokens:    tokens,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
