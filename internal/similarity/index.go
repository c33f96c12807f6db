// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package similarity

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/tomtom215/marquee/internal/catalog"
)

// DefaultK is the number of results returned when no k is requested.
const DefaultK = 5

// posting is one occurrence of a term in the weighted title collection.
type posting struct {
	ordinal int
	weight  float64
}

// Match is a ranked query result.
type Match struct {
	Ordinal int
	Score   float64
}

// Index is an immutable TF-IDF index over a title column.
// Ordinals are positions in the titles slice given to Build.
type Index struct {
	vectors  []Vector
	idf      map[string]float64
	postings map[string][]posting
	titles   map[string]int
}

// Build constructs the index from titles in ordinal order.
// Empty titles, and titles made only of stop words, get a zero vector.
func Build(titles []string) *Index {
	n := len(titles)
	idx := &Index{
		vectors: make([]Vector, n),
		titles:  make(map[string]int, n),
	}

	counts := make([]map[string]int, n)
	df := make(map[string]int)
	for i, title := range titles {
		key := catalog.NormalizeTitle(title)
		if _, seen := idx.titles[key]; !seen {
			idx.titles[key] = i
		}

		tokens := Tokenize(title)
		if len(tokens) == 0 {
			continue
		}
		tf := make(map[string]int, len(tokens))
		for _, t := range tokens {
			tf[t]++
		}
		for t := range tf {
			df[t]++
		}
		counts[i] = tf
	}

	// smooth idf: ln((1+n)/(1+df)) + 1
	idx.idf = make(map[string]float64, len(df))
	for t, d := range df {
		idx.idf[t] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	idx.postings = make(map[string][]posting, len(df))
	for i, tf := range counts {
		if tf == nil {
			continue
		}
		weights := make(map[string]float64, len(tf))
		for t, c := range tf {
			weights[t] = float64(c) * idx.idf[t]
		}
		v := newVector(weights)
		idx.vectors[i] = v
		for _, term := range v {
			idx.postings[term.Word] = append(idx.postings[term.Word], posting{ordinal: i, weight: term.Weight})
		}
	}

	return idx
}

// Len returns the number of indexed titles.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// VocabularySize returns the number of distinct indexed terms.
func (idx *Index) VocabularySize() int {
	return len(idx.idf)
}

// IDF returns the inverse document frequency of term, or 0 if it is not indexed.
func (idx *Index) IDF(term string) float64 {
	return idx.idf[term]
}

// Vector returns the weighted vector of ordinal. The result must not be modified.
func (idx *Index) Vector(ordinal int) Vector {
	idx.checkOrdinal("Vector", ordinal)
	return idx.vectors[ordinal]
}

// Resolve maps title to its ordinal with a case-insensitive exact match.
// The first ordinal in load order wins when titles repeat.
func (idx *Index) Resolve(title string) (int, error) {
	ord, ok := idx.titles[catalog.NormalizeTitle(title)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", catalog.ErrNotFound, title)
	}
	return ord, nil
}

// Similarity returns the cosine similarity of two indexed titles.
// It is 0 when either title has no indexed terms.
func (idx *Index) Similarity(a, b int) float64 {
	idx.checkOrdinal("Similarity", a)
	idx.checkOrdinal("Similarity", b)
	return Dot(idx.vectors[a], idx.vectors[b])
}

// Query returns the ordinals of the k titles most similar to title, best
// first, excluding title itself. Equal scores are ordered by ascending
// ordinal. k <= 0 means DefaultK.
func (idx *Index) Query(title string, k int) ([]int, error) {
	matches, err := idx.QueryScored(title, k)
	if err != nil {
		return nil, err
	}
	ordinals := make([]int, len(matches))
	for i, m := range matches {
		ordinals[i] = m.Ordinal
	}
	return ordinals, nil
}

// QueryScored is Query with the similarity score of each result.
func (idx *Index) QueryScored(title string, k int) ([]Match, error) {
	self, err := idx.Resolve(title)
	if err != nil {
		return nil, err
	}
	return idx.Neighbors(self, k), nil
}

// Neighbors ranks every other ordinal against self and returns the top k.
func (idx *Index) Neighbors(self, k int) []Match {
	idx.checkOrdinal("Neighbors", self)
	if k <= 0 {
		k = DefaultK
	}
	if limit := idx.Len() - 1; k > limit {
		k = limit
	}
	if k <= 0 {
		return []Match{}
	}

	// Accumulate dot products through the postings of the query's terms.
	// Every ordinal not touched here scores exactly 0.
	scores := make(map[int]float64)
	for _, term := range idx.vectors[self] {
		for _, p := range idx.postings[term.Word] {
			if p.ordinal != self {
				scores[p.ordinal] += term.Weight * p.weight
			}
		}
	}

	matches := make([]Match, 0, len(scores))
	for ord, score := range scores {
		matches = append(matches, Match{Ordinal: ord, Score: score})
	}
	slices.SortFunc(matches, compareMatches)
	if len(matches) >= k {
		return matches[:k]
	}

	// Fill with zero-score titles in ascending ordinal order.
	for ord := 0; ord < idx.Len() && len(matches) < k; ord++ {
		if ord == self {
			continue
		}
		if _, touched := scores[ord]; touched {
			continue
		}
		matches = append(matches, Match{Ordinal: ord})
	}
	return matches
}

// compareMatches orders by descending score, then ascending ordinal.
func compareMatches(a, b Match) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Ordinal, b.Ordinal)
}

func (idx *Index) checkOrdinal(op string, ordinal int) {
	if ordinal < 0 || ordinal >= len(idx.vectors) {
		panic(&catalog.InvariantViolation{Op: op, Ordinal: ordinal, Len: len(idx.vectors)})
	}
}
