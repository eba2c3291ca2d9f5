package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/nextgenaiclub/codehunt/internal/config"
	"github.com/nextgenaiclub/codehunt/internal/database"
	"github.com/nextgenaiclub/codehunt/internal/hunt"
	"github.com/nextgenaiclub/codehunt/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	store, checks, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := hunt.NewEngine(store, hunt.DefaultCatalog())

	srv := server.New(cfg.HTTPAddr, logger, engine, checks, cfg.AdminPasswordHash, cfg.SPADir)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr, "store", cfg.Store)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

// openStore builds the configured backend, its health checks, and a
// cleanup func.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (hunt.Store, []server.HealthCheck, func(), error) {
	switch cfg.Store {
	case "memory":
		return hunt.NewMemStore(), nil, func() {}, nil

	case "sqlite":
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, nil, fmt.Errorf("creating db directory: %w", err)
			}
		}
		db, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to sqlite: %w", err)
		}
		store, err := hunt.NewDocStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		logger.Info("connected to sqlite", "path", cfg.DBPath)
		checks := []server.HealthCheck{{Name: "sqlite", Ping: db.PingContext}}
		return store, checks, func() { db.Close() }, nil

	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parsing redis url: %w", err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, nil, fmt.Errorf("pinging redis: %w", err)
		}
		logger.Info("connected to redis")
		checks := []server.HealthCheck{{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}}}
		return hunt.NewRedisStore(rdb), checks, func() { rdb.Close() }, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
