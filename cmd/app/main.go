package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/bootstrap"
	"github.com/nt-jambaa/toktok-mini-game/internal/config"
	"github.com/nt-jambaa/toktok-mini-game/internal/leaderboard"
	"github.com/nt-jambaa/toktok-mini-game/internal/server"
	"github.com/nt-jambaa/toktok-mini-game/internal/sse"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	animals, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		_ = kv.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = kv.Close()
		return err
	}

	farmService, mode, err := bootstrap.InitializeFarm(cfg, animals, kv, publisher)
	if err != nil {
		abortCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(abortCtx, bootstrap.ShutdownComponents{
			ResilientPublisher: publisher,
			Storage:            kv,
		})
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bus, hub)

	pool, sched := bootstrap.StartDriver(farmService, mode, cfg.PollInterval)

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		Version:     cfg.Version,
		Farm:        farmService,
		Mode:        mode,
		Leaderboard: leaderboard.Default(),
		Storage:     kv,
		Hub:         hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		Pool:               pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Storage:            kv,
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
