package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlattimer/skillrank/internal/api"
	"github.com/jlattimer/skillrank/internal/config"
	"github.com/jlattimer/skillrank/internal/factory"
	redisstorage "github.com/jlattimer/skillrank/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage,
	}

	if cfg.Storage == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("SKILLRANK_REDIS_URL required when SKILLRANK_STORAGE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Populate the roster from the persisted snapshot; an absent or
	// unreadable snapshot starts the roster empty.
	app.RosterController.Load(context.Background())

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		RosterController:   app.RosterController,
		AssemblyController: app.AssemblyController,
		MatchController:    app.MatchController,
	})

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = cfg.Host
	serverCfg.Port = cfg.Port
	server := api.NewServer(router, serverCfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("received signal", slog.String("signal", sig.String()))
	}

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}

	// Let any in-flight snapshot write land before exiting.
	app.RosterController.Flush()
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
