// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package similarity implements the TF-IDF title index behind recommendations.

Each title is lower-cased and split into terms of two or more word
characters; English stop words are dropped. A term's weight is its raw count
in the title times the smoothed inverse document frequency

	idf(t) = ln((1 + N) / (1 + df(t))) + 1

and every vector is scaled to unit length, so cosine similarity is a plain dot
product. Titles with no surviving terms have a zero vector and score 0 against
everything.

Queries walk the postings of the query's terms instead of comparing against
every title. Titles no posting reaches score 0 and are used, in ascending
ordinal order, only to fill the result up to k.

# Ranking

Results are ordered by descending similarity. Equal scores are ordered by
ascending ordinal, which keeps output deterministic when many titles collapse
to the same vector (for example many empty titles). The query's own ordinal
is never returned.

# Thread Safety

An Index is immutable after Build and safe for concurrent queries.
*/
package similarity
