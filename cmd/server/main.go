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

	"github.com/jordanhale/taskdeck/internal/api"
	"github.com/jordanhale/taskdeck/internal/config"
	"github.com/jordanhale/taskdeck/internal/store"
	"github.com/jordanhale/taskdeck/internal/tasks"
	"github.com/jordanhale/taskdeck/internal/weather"
)

func main() {
	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load(os.Getenv("TASKDECK_CONFIG"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Data files
	db, err := store.Open(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open data directory", "error", err)
		os.Exit(1)
	}

	// Stores
	taskStore := store.NewTaskStore(db)
	userStore := store.NewUserStore(db)
	weatherStore := store.NewWeatherStore(db)
	settingsStore := store.NewSettingsStore(db)

	// Services
	taskSvc := tasks.NewService(taskStore, logger)
	weatherSvc := weather.NewService(weatherStore, cfg.WeatherTTL())

	// Router
	router := api.NewRouter(taskSvc, weatherSvc, userStore, settingsStore, logger)

	// Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "addr", addr, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
