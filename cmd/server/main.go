package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"oleander_app_echo/internal/config"
	"oleander_app_echo/internal/handlers"
	appMiddleware "oleander_app_echo/internal/middleware"
	"oleander_app_echo/internal/services"
	"oleander_app_echo/web"
)

func main() {
	// Load environment variables
	envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := services.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	config.ReportDotEnv(logger, envErr)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize view session store
	store, closeStore, err := services.OpenSessionStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if sweeper, ok := store.(services.Sweeper); ok {
		go services.RunSweeper(ctx, sweeper, cfg.SweepInterval, logger)
	}

	renderer, err := web.NewTemplateRenderer(web.Templates)
	if err != nil {
		return err
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler(logger)

	// Middleware
	e.Use(appMiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())

	// Template renderer with per-page cloning
	e.Renderer = renderer

	// Initialize handlers
	appHandler := handlers.NewAppHandler(store, services.NewLogSubmitter(logger), cfg.ValidatorOptions(), logger)
	appHandler.Register(e)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("age_validation", cfg.AgeValidation.String()),
		)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
