package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ougirez/regstat/internal/api"
	"github.com/ougirez/regstat/internal/pkg/config"
	"github.com/ougirez/regstat/internal/pkg/logger"
	"github.com/ougirez/regstat/internal/pkg/store"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (yaml, json or toml)")
	debug := pflag.Bool("debug", false, "verbose echo logging")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(context.Background(), err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal(context.Background(), err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := store.Open(ctx, store.OpenOpts{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DBDSN,
		MaxConns: cfg.DBMaxConns,
		Attempts: cfg.DBConnectAttempts,
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool), api.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		Debug:          *debug,
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Infof(ctx, "listening on %s (%s)", cfg.HTTPAddr, cfg.DBDriver)
		return svc.Serve(cfg.HTTPAddr)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		logger.Infof(ctx, "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "server stopped: %s", err.Error())
		os.Exit(1)
	}
}
