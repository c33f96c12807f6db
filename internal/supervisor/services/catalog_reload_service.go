// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/recommend"
)

// DefaultReloadTimeout bounds one catalog rebuild.
const DefaultReloadTimeout = 10 * time.Minute

// CatalogBuilder rebuilds the served catalog snapshot.
// Implemented by *recommend.Service.
type CatalogBuilder interface {
	Build(ctx context.Context) (*recommend.Snapshot, error)
}

// CatalogReloadService periodically rebuilds the catalog snapshot and title
// index. The initial build happens before the tree starts, so the first
// rebuild runs one interval after Serve is called.
type CatalogReloadService struct {
	builder  CatalogBuilder
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCatalogReloadService creates the reload loop. interval <= 0 disables
// reloading; Serve then only waits for shutdown.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogReloadService(builder CatalogBuilder, interval time.Duration, logger zerolog.Logger) *CatalogReloadService {
	return &CatalogReloadService{
		builder:  builder,
		interval: interval,
		timeout:  DefaultReloadTimeout,
		logger:   logger.With().Str("service", "catalog-reload").Logger(),
		name:     "catalog-reload-service",
	}
}

// Serve implements suture.Service.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("catalog reload disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Msg("catalog reload service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog reload service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.reload(ctx)
		}
	}
}

// reload runs one rebuild. Failures keep the previous snapshot live.
func (s *CatalogReloadService) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	snap, err := s.builder.Build(reloadCtx)
	if err != nil {
		s.logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("scheduled catalog reload failed")
		return
	}

	s.logger.Debug().
		Uint64("generation", snap.Generation).
		Dur("duration", time.Since(start)).
		Msg("scheduled catalog reload complete")
}

// String implements fmt.Stringer.
func (s *CatalogReloadService) String() string {
	return s.name
}
