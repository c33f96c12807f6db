// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"

	"github.com/tomtom215/marquee/internal/catalog"
)

// Loader produces a fresh catalog for each rebuild.
type Loader interface {
	LoadCatalog(ctx context.Context) (*catalog.Store, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) (*catalog.Store, error)

// LoadCatalog calls f(ctx).
func (f LoaderFunc) LoadCatalog(ctx context.Context) (*catalog.Store, error) {
	return f(ctx)
}

// SnapshotLoader loads the catalog from a snapshot file through a catalog.Source.
type SnapshotLoader struct {
	Source catalog.Source
	Path   string
}

// LoadCatalog reads l.Path through l.Source.
func (l SnapshotLoader) LoadCatalog(ctx context.Context) (*catalog.Store, error) {
	return catalog.Load(ctx, l.Source, l.Path)
}
