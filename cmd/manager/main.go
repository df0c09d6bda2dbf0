// Package main is the entry point for the console manager API server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voiceconsole/manager/internal/api"
	"github.com/voiceconsole/manager/internal/auth"
	"github.com/voiceconsole/manager/internal/config"
	"github.com/voiceconsole/manager/internal/database"
	"github.com/voiceconsole/manager/internal/repository"
	"github.com/voiceconsole/manager/internal/setup"
	"github.com/voiceconsole/manager/internal/validation"
	"github.com/voiceconsole/manager/pkg/logger"
	"github.com/voiceconsole/manager/pkg/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel, !cfg.Environment.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Console manager %s", version.String())
	// Log configuration (without sensitive data)
	logger.Info("Database config: Host=%s, Port=%d, User=%s, Database=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Database)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal("Failed to run migrations: %v", err)
		}
	}

	users := repository.NewUserRepository(db)

	authService, err := auth.NewService(auth.ConfigFromApp(cfg), users)
	if err != nil {
		logger.Fatal("Failed to create auth service: %v", err)
	}
	setupService := setup.NewService(users, validation.DefaultPasswordPolicy(cfg.Auth.MinPasswordLength),
		setup.WithTxManager(repository.NewTxManager(db)))

	router := api.SetupRouter(api.Deps{
		Config: cfg,
		Auth:   authService,
		Setup:  setupService,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting console manager on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
