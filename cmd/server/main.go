// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"onboarding-engine/internal/analyzer"
	"onboarding-engine/internal/common/config"
	"onboarding-engine/internal/common/database"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/gemini"
	"onboarding-engine/internal/proposal"
	"onboarding-engine/internal/server"
	"onboarding-engine/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting onboarding engine",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	ctx := context.Background()

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		zapLog.Fatal("gemini client init failed", zap.Error(err))
	}
	defer geminiClient.Close()

	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		zapLog.Fatal("redis client init failed", zap.Error(err))
	}
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		zapLog.Warn("redis unreachable at startup, session persistence degraded", zap.Error(err))
	}
	cancel()

	store := session.NewStore(redisClient, time.Duration(cfg.Sessions.TTL)*time.Second, log)
	engine := analyzer.New(geminiClient, log)
	renderer := proposal.NewRenderer(cfg.Contact)

	handler := server.NewHandler(engine, store, renderer, cfg.Limits, log)
	router := server.NewRouter(handler, log, cfg.Limits.MaxPayloadBytes)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.RequestTimeout) * time.Millisecond,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()
	zapLog.Info("server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}
