package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quran-quest/quran-quest-api/internal/database"
	"github.com/quran-quest/quran-quest-api/internal/logger"
	"github.com/quran-quest/quran-quest-api/internal/server"
	"github.com/quran-quest/quran-quest-api/pkg/config"
)

func main() {
	cfg := config.LoadConfig()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db := database.New(cfg)
	defer db.Close()

	srv, err := server.NewServer(db, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize server", zap.Error(err))
	}

	srv.StartBackgroundJobs()
	defer srv.StopBackgroundJobs()

	httpServer := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
