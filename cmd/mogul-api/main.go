package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mogul/internal/api"
	"mogul/internal/config"
	"mogul/internal/game"
	"mogul/internal/persist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadAPIFromEnv()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var saves persist.Store
	switch cfg.SaveBackend {
	case config.BackendPostgres:
		pg, err := persist.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("postgres connect failed", "err", err)
			os.Exit(1)
		}
		defer pg.Close()
		saves = pg
	default:
		fs, err := persist.NewFileStore(cfg.SaveDir)
		if err != nil {
			logger.Error("save dir init failed", "err", err)
			os.Exit(1)
		}
		saves = fs
	}

	store := game.NewStore(saves, logger)
	if err := store.Load(ctx); err != nil {
		logger.Error("load save failed", "err", err)
		os.Exit(1)
	}

	go store.Run(ctx)

	server := api.New(logger, store)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("mogul api listening", "addr", cfg.Addr, "backend", cfg.SaveBackend)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
