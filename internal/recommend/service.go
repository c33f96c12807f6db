// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/similarity"
)

// ErrNotReady is returned by queries issued before the first successful Build.
var ErrNotReady = errors.New("catalog index not built yet")

// Snapshot is one immutable catalog generation and the index built from it.
type Snapshot struct {
	Store         *catalog.Store
	Index         *similarity.Index
	Generation    uint64
	BuiltAt       time.Time
	BuildDuration time.Duration
}

// resultKey identifies a cached result list.
type resultKey struct {
	generation uint64
	title      string
	k          int
}

// Service serves lookups and recommendations from the live Snapshot.
// It is safe for concurrent use.
type Service struct {
	loader Loader
	config Config
	logger zerolog.Logger

	current atomic.Pointer[Snapshot]
	builds  singleflight.Group

	// nil when caching is disabled
	results *cache.LRU[resultKey, []int]
}

// NewService creates a Service. Nothing is loaded until Build is called.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(loader Loader, cfg Config, logger zerolog.Logger) *Service {
	cfg = cfg.normalize()
	s := &Service{
		loader: loader,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.CacheSize > 0 {
		s.results = cache.NewLRU[resultKey, []int](cfg.CacheSize, cfg.CacheTTL)
	}
	return s
}

// Config returns the effective service settings.
func (s *Service) Config() Config {
	return s.config
}

// Build loads a new catalog, indexes its titles and swaps both in atomically.
// Callers arriving while a build is running wait for it and share its result.
// On failure the previous Snapshot stays live.
func (s *Service) Build(ctx context.Context) (*Snapshot, error) {
	v, err, shared := s.builds.Do("build", func() (interface{}, error) {
		return s.build(ctx)
	})
	if shared {
		s.logger.Debug().Msg("joined in-flight catalog build")
	}
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *Service) build(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	store, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		reason := "unknown"
		var le *catalog.LoadError
		if errors.As(err, &le) {
			reason = le.Reason
		}
		metrics.RecordReloadFailure(reason)
		s.logger.Warn().Err(err).Str("reason", reason).Msg("catalog build failed, keeping previous snapshot")
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	index := similarity.Build(store.Titles())

	var generation uint64 = 1
	if prev := s.current.Load(); prev != nil {
		generation = prev.Generation + 1
	}

	snap := &Snapshot{
		Store:         store,
		Index:         index,
		Generation:    generation,
		BuiltAt:       time.Now(),
		BuildDuration: time.Since(start),
	}
	s.current.Store(snap)

	if s.results != nil {
		evicted := s.results.RemoveFunc(func(k resultKey) bool { return k.generation != generation })
		s.logger.Debug().Int("evicted", evicted).Msg("dropped cached results of previous generation")
	}

	metrics.RecordIndexBuild(snap.BuildDuration, store.Len(), index.VocabularySize(), generation)
	s.logger.Info().
		Uint64("generation", generation).
		Int("records", store.Len()).
		Int("vocabulary", index.VocabularySize()).
		Dur("duration", snap.BuildDuration).
		Str("path", store.Path()).
		Msg("catalog index built")

	return snap, nil
}

// Snapshot returns the live Snapshot, or nil before the first Build.
func (s *Service) Snapshot() *Snapshot {
	return s.current.Load()
}

// Ready reports whether a Snapshot is being served.
func (s *Service) Ready() bool {
	return s.current.Load() != nil
}

// Store returns the live catalog.
func (s *Service) Store() (*catalog.Store, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap.Store, nil
}

// LookupTitle returns the first record whose title matches case-insensitively.
func (s *Service) LookupTitle(title string) (catalog.Record, error) {
	snap := s.current.Load()
	if snap == nil {
		return catalog.Record{}, ErrNotReady
	}
	ord, err := snap.Store.LookupByTitle(title)
	if err != nil {
		return catalog.Record{}, err
	}
	return snap.Store.GetByOrdinal(ord), nil
}

// Recommend returns up to k records whose titles are most similar to title,
// best first. k <= 0 selects the default; k above the maximum is clamped.
func (s *Service) Recommend(title string, k int) ([]catalog.Record, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}

	start := time.Now()
	k = s.config.ClampK(k)
	ordinals, outcome, err := s.rank(snap, title, k)
	metrics.RecordRecommendQuery(outcome, time.Since(start))
	if err != nil {
		return nil, err
	}

	records := make([]catalog.Record, len(ordinals))
	for i, ord := range ordinals {
		records[i] = snap.Store.GetByOrdinal(ord)
	}
	return records, nil
}

// rank resolves the ordered neighbor ordinals, consulting the result cache first.
func (s *Service) rank(snap *Snapshot, title string, k int) ([]int, string, error) {
	key := resultKey{generation: snap.Generation, title: catalog.NormalizeTitle(title), k: k}

	if s.results != nil {
		if ordinals, ok := s.results.Get(key); ok {
			metrics.RecordCacheLookup(true)
			return ordinals, "hit", nil
		}
		metrics.RecordCacheLookup(false)
	}

	ordinals, err := snap.Index.Query(title, k)
	if err != nil {
		return nil, "not_found", err
	}

	if s.results != nil {
		s.results.Add(key, ordinals)
	}
	return ordinals, "computed", nil
}

// CacheStats returns result cache hit/miss counters and size.
func (s *Service) CacheStats() (hits, misses int64, size int) {
	if s.results == nil {
		return 0, 0, 0
	}
	return s.results.Stats()
}
