// Package main is the entry point for the clinic channel gateway HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/popeskul/clinic-channel-gateway/internal/config"
	"github.com/popeskul/clinic-channel-gateway/internal/handler"
	"github.com/popeskul/clinic-channel-gateway/internal/middleware"
	"github.com/popeskul/clinic-channel-gateway/internal/repository"
	"github.com/popeskul/clinic-channel-gateway/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	resetLocation, err := cfg.Scheduler.ResetLocation()
	if err != nil {
		logger.Fatal("Failed to resolve reset timezone", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, redisClient, resetLocation, logger)

	h := handler.NewHandler(svc, logger)

	rateLimiter := middleware.NewRateLimiter(
		float64(cfg.Middleware.RateLimit),
		cfg.Middleware.RateLimitBurst,
	)
	defer rateLimiter.Stop()

	middlewares := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		rateLimiter.Middleware,
		middleware.Timeout(30 * time.Second),
	}
	if cfg.Middleware.EnableCORS {
		middlewares = append(middlewares, middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.Middleware.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			MaxAge:         86400,
		}))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.Chain(h.Routes(), middlewares...),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background workers start before the listener so the first requests
	// already see fresh health data.
	startWorker(logger, "health monitor", svc.Monitor.Start)
	startWorker(logger, "dispatcher", svc.Dispatcher.Start)
	startWorker(logger, "daily reset", svc.Reset.Start)

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	stopWorker(logger, "daily reset", svc.Reset.IsRunning, svc.Reset.Stop)
	stopWorker(logger, "dispatcher", svc.Dispatcher.IsRunning, svc.Dispatcher.Stop)
	stopWorker(logger, "health monitor", svc.Monitor.IsRunning, svc.Monitor.Stop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func startWorker(logger *zap.Logger, name string, start func() error) {
	if err := start(); err != nil {
		logger.Error("Failed to start worker", zap.String("worker", name), zap.Error(err))
		return
	}
	logger.Info("Worker started", zap.String("worker", name))
}

func stopWorker(logger *zap.Logger, name string, running func() bool, stop func() error) {
	if !running() {
		return
	}
	if err := stop(); err != nil {
		logger.Error("Failed to stop worker", zap.String("worker", name), zap.Error(err))
	}
}
