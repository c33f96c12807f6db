// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("snapshot_path", cfg.Catalog.SnapshotPath).
		Dur("reload_interval", cfg.Catalog.ReloadInterval).
		Str("addr", cfg.Server.Addr()).
		Int("default_k", cfg.Recommend.DefaultK).
		Int("max_k", cfg.Recommend.MaxK).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		var loadErr *catalog.LoadError
		if errors.As(err, &loadErr) {
			logging.Fatal().
				Err(loadErr.Err).
				Str("path", loadErr.Path).
				Str("reason", loadErr.Reason).
				Msg("Failed to load catalog snapshot")
		}
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// run builds the catalog once, then serves until ctx is canceled.
// A snapshot that cannot be loaded at startup is returned as *catalog.LoadError.
func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	svc := newRecommendService(database.NewSnapshotReader(db), cfg)
	if _, err := svc.Build(ctx); err != nil {
		return err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	if cfg.Catalog.ReloadInterval > 0 {
		tree.AddDataService(services.NewCatalogReloadService(svc, cfg.Catalog.ReloadInterval, logging.WithComponent("catalog")))
	}
	tree.AddAPIService(services.NewHTTPServerService(newHTTPServer(cfg, svc), cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	logging.Info().Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("supervisor tree stopped: %w", err)
	}
	return nil
}

// newRecommendService wires the snapshot source into a recommend.Service.
func newRecommendService(src catalog.Source, cfg *config.Config) *recommend.Service {
	loader := recommend.SnapshotLoader{Source: src, Path: cfg.Catalog.SnapshotPath}
	return recommend.NewService(loader, recommend.ConfigFrom(cfg.Recommend), logging.Logger())
}

// newHTTPServer builds the API server for svc.
func newHTTPServer(cfg *config.Config, svc *recommend.Service) *http.Server {
	handler := api.NewHandler(svc, cfg.Recommend.MinVotes)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security))
	router := api.NewRouter(handler, mw)

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
