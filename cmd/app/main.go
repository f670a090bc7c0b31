package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/PhoneTycoon_Go/internal/bootstrap"
	"github.com/osse101/PhoneTycoon_Go/internal/config"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/idempotency"
	"github.com/osse101/PhoneTycoon_Go/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "phone tycoon: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	bootstrap.SetupLogger(cfg)
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", w)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(cfg)
	bootstrap.RegisterStoreMetrics(prometheus.DefaultRegisterer, repos.Store)

	services, err := bootstrap.InitializeServices(cfg, repos, publisher)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: services.EventLog,
	}); err != nil {
		return err
	}

	srv := server.NewServer(server.Config{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerWindow: cfg.RateLimitPerWindow,
	}, server.Services{
		Store:       repos.Store,
		Users:       services.Users,
		Cases:       services.Lootbox,
		Market:      services.Market,
		History:     services.EventLog,
		Idempotency: idempotency.NewCache(cfg.IdempotencyCacheSize, cfg.IdempotencyTTL),
	})

	cleanup := eventlog.NewCleanupJob(services.EventLog, cfg.HistoryRetention)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return cleanup.Run(gctx, eventlog.DefaultCleanupInterval)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			ResilientPublisher: publisher,
		})
		return nil
	})

	slog.Info("Phone Tycoon API started", "port", cfg.Port)
	return g.Wait()
}
