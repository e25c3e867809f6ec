package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-autoresponder-backend/config"
	_ "go-autoresponder-backend/docs" // Important for Swagger
	v1 "go-autoresponder-backend/internal/delivery/http/v1"
	"go-autoresponder-backend/internal/domain"
	"go-autoresponder-backend/internal/usecase"
	"go-autoresponder-backend/pkg/brevo"
	"go-autoresponder-backend/pkg/logger"
	"go-autoresponder-backend/pkg/redis"
)

// @title           Form Auto-Responder API
// @version         1.0
// @description     Webhook receiver that acknowledges contact-form submissions by email.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config (fails fast on missing provider credentials)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting form auto-responder", "port", cfg.Port)

	// 3. Setup Redis (optional; only backs the dedup middleware)
	if cfg.DedupWindowSeconds > 0 {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, dedup uses in-memory fallback", "error", err.Error())
		}
		defer redis.Close()
	}

	// 4. Setup Email Dispatcher
	brevoClient := brevo.NewClient(cfg.BrevoAPIKey)
	dispatcher := usecase.NewBrevoDispatcher(brevoClient)

	// 5. Setup UseCase
	autoResponderUC := usecase.NewAutoResponderUsecase(dispatcher, domain.Party{
		Address: cfg.SenderEmail,
		Name:    cfg.SenderName,
	})

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AutoResponderUC: autoResponderUC,
		Config:          cfg,
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
