// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/recommend"
)

// mockBuilder counts Build calls and fails while failing is set.
type mockBuilder struct {
	calls   atomic.Int32
	failing atomic.Bool
}

func (m *mockBuilder) Build(ctx context.Context) (*recommend.Snapshot, error) {
	n := m.calls.Add(1)
	if m.failing.Load() {
		return nil, &catalog.LoadError{Path: "movies.parquet", Reason: catalog.ReasonMissing}
	}
	return &recommend.Snapshot{Generation: uint64(n)}, nil
}

// syncBuffer is a bytes.Buffer safe for concurrent writes from the logger.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCatalogReloadService_Interface(t *testing.T) {
	var _ suture.Service = (*CatalogReloadService)(nil)
	var _ CatalogBuilder = (*recommend.Service)(nil)
}

func TestCatalogReloadService_String(t *testing.T) {
	svc := NewCatalogReloadService(&mockBuilder{}, time.Minute, discardLogger)
	if svc.String() != "catalog-reload-service" {
		t.Errorf("expected 'catalog-reload-service', got %q", svc.String())
	}
}

func TestCatalogReloadService_ScheduledReload(t *testing.T) {
	builder := &mockBuilder{}
	svc := NewCatalogReloadService(builder, 20*time.Millisecond, discardLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if builder.calls.Load() < 2 {
		t.Errorf("expected at least 2 scheduled reloads, got %d", builder.calls.Load())
	}
}

func TestCatalogReloadService_NoReloadBeforeFirstTick(t *testing.T) {
	builder := &mockBuilder{}
	svc := NewCatalogReloadService(builder, time.Hour, discardLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_ = svc.Serve(ctx)
	if builder.calls.Load() != 0 {
		t.Errorf("expected no reload before the first interval, got %d", builder.calls.Load())
	}
}

func TestCatalogReloadService_Disabled(t *testing.T) {
	builder := &mockBuilder{}
	svc := NewCatalogReloadService(builder, 0, discardLogger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("disabled service did not stop")
	}
	if builder.calls.Load() != 0 {
		t.Errorf("disabled service rebuilt %d times", builder.calls.Load())
	}
}

func TestCatalogReloadService_FailureKeepsRunning(t *testing.T) {
	builder := &mockBuilder{}
	builder.failing.Store(true)

	var logs syncBuffer
	svc := NewCatalogReloadService(builder, 15*time.Millisecond, zerolog.New(&logs))

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("a failed reload must not stop the service, got %v", err)
	}
	if builder.calls.Load() < 2 {
		t.Errorf("expected reloads to continue after failure, got %d calls", builder.calls.Load())
	}
	if !strings.Contains(logs.String(), "scheduled catalog reload failed") {
		t.Errorf("failure not logged: %s", logs.String())
	}
}

func TestCatalogReloadService_WithRecommendService(t *testing.T) {
	var loads atomic.Int32
	loader := recommend.LoaderFunc(func(context.Context) (*catalog.Store, error) {
		loads.Add(1)
		return catalog.New([]catalog.Record{{Title: "Heat"}, {Title: "Alien"}}), nil
	})
	rs := recommend.NewService(loader, recommend.DefaultConfig(), discardLogger)
	if _, err := rs.Build(context.Background()); err != nil {
		t.Fatalf("initial Build() error = %v", err)
	}

	svc := NewCatalogReloadService(rs, 20*time.Millisecond, discardLogger)
	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if gen := rs.Snapshot().Generation; gen < 2 || gen != uint64(loads.Load()) {
		t.Errorf("generation = %d after %d loads", gen, loads.Load())
	}
}
