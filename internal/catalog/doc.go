// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package catalog holds the immutable, ordinal-indexed movie collection that
every other component reads from.

A Store is built once from a snapshot and never mutated. Each Record carries a
dense 0-based Ordinal equal to its position in load order; ordinals are the
only handle the similarity index keeps, so GetByOrdinal(i).Ordinal == i for
every valid i.

# Loading

	reader := database.NewSnapshotReader(cfg.Database)
	store, err := catalog.Load(ctx, reader, "data/movies_dataset.parquet")
	if err != nil {
	    var le *catalog.LoadError
	    if errors.As(err, &le) { ... }
	}

Tests and other sources build a Store directly with New.

# Title Lookup

LookupByTitle is a case-insensitive exact match using Unicode case folding
(NormalizeTitle). Titles are not unique; when several records share a
normalized title the first one in load order wins.

# Errors

  - ErrNotFound: no record matches; wrapped with %w, check with errors.Is
  - ErrInsufficientVotes: the record exists but has too few votes
  - *LoadError: snapshot missing, unreadable or lacking required columns
  - *InvariantViolation: panic value for an out-of-range ordinal

# Thread Safety

A Store is read-only after construction and safe for concurrent use without
locking.
*/
package catalog
