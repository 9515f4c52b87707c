package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mc-creative-backend/config"
	"mc-creative-backend/internal/delivery/http/api"
	"mc-creative-backend/internal/domain"
	"mc-creative-backend/internal/repository/postgres"
	"mc-creative-backend/internal/usecase"
	"mc-creative-backend/pkg/database"
	"mc-creative-backend/pkg/email"
	"mc-creative-backend/pkg/logger"
	"mc-creative-backend/pkg/notion"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting marketing backend", "port", cfg.Port)

	// 3. Setup Storage (optional: the service stays up without it, the
	// diagnostics endpoint reports the degraded state)
	var store domain.DocumentStore
	if cfg.DBUrl != "" {
		pool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Warn("Database unavailable, continuing without persistence", "error", err)
		} else {
			defer pool.Close()
			store = postgres.NewDocumentRepository(pool)
		}
	}

	// 4. Setup Sinks
	notifier := email.NewService(cfg)
	if !notifier.IsConfigured() {
		logger.Log.Warn("SMTP not fully configured - inquiry notifications will be skipped")
	}
	mirror := notion.NewClient(cfg)
	if !mirror.IsConfigured() {
		logger.Log.Warn("Notion integration not configured - submissions will not be mirrored")
	}

	// 5. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(store, notifier, mirror, validate)
	planUC := usecase.NewPlanUsecase(cfg)
	diagnosticsUC := usecase.NewDiagnosticsUsecase(store, cfg)

	// 6. Setup Router
	router := api.NewRouter(api.RouterDeps{
		ContactUC:     contactUC,
		PlanUC:        planUC,
		DiagnosticsUC: diagnosticsUC,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
