// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package similarity

import (
	"math"
	"slices"
	"strings"
)

// Term is a single term-weight pair in a sparse vector.
type Term struct {
	Word   string
	Weight float64
}

// Vector is a sparse, L2-normalized TF-IDF vector sorted by Word.
// The zero-length Vector represents a title with no indexed terms.
type Vector []Term

// newVector builds a sorted, unit-length Vector from term weights.
func newVector(weights map[string]float64) Vector {
	if len(weights) == 0 {
		return nil
	}

	v := make(Vector, 0, len(weights))
	var norm float64
	for word, w := range weights {
		v = append(v, Term{Word: word, Weight: w})
		norm += w * w
	}
	slices.SortFunc(v, func(a, b Term) int { return strings.Compare(a.Word, b.Word) })

	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	for i := range v {
		v[i].Weight /= norm
	}
	return v
}

// Dot returns the dot product of two sorted vectors using a merge-join.
// Both vectors are unit length, so this is their cosine similarity.
func Dot(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Word == b[j].Word:
			dot += a[i].Weight * b[j].Weight
			i++
			j++
		case a[i].Word < b[j].Word:
			i++
		default:
			j++
		}
	}
	return dot
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, t := range v {
		sum += t.Weight * t.Weight
	}
	return math.Sqrt(sum)
}
