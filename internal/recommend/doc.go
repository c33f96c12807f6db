// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package recommend owns the live catalog and title index and answers title
lookups and "more like this" queries against them.

# Lifecycle

	svc := recommend.NewService(loader, recommend.ConfigFrom(cfg.Recommend), logger)
	if _, err := svc.Build(ctx); err != nil {
	    // *catalog.LoadError: the snapshot could not be read
	}
	recs, err := svc.Recommend("The Matrix", 5)

Build loads a catalog through the Loader, builds a similarity index over its
title column and publishes both as one immutable Snapshot. Readers take the
current Snapshot with a single atomic load and never block on a rebuild.
Concurrent Build calls share one in-flight rebuild; a failed rebuild leaves
the previous Snapshot in place.

# Result Cache

Recommendation results are cached by (generation, normalized title, k).
Each successful Build bumps the generation, so entries from an older
catalog are never served and are dropped on swap.
*/
package recommend
