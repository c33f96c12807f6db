// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import "time"

// Record is one movie row of the snapshot.
// Only Title and Ordinal are interpreted by the recommender; the remaining
// fields are passed through for the catalog queries.
type Record struct {
	Title       string     `json:"title"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	ReleaseYear int        `json:"release_year,omitempty"`
	VoteAverage float64    `json:"vote_average"`
	VoteCount   int64      `json:"vote_count"`
	Popularity  float64    `json:"popularity"`
	Cast        string     `json:"cast,omitempty"`
	Crew        string     `json:"crew,omitempty"`
	Job         string     `json:"job,omitempty"`
	Return      float64    `json:"return"`
	Budget      float64    `json:"budget"`
	Revenue     float64    `json:"revenue"`

	// Ordinal is the position in load order, assigned by New.
	Ordinal int `json:"ordinal"`
}

// Released reports whether the record has a usable release date.
func (r *Record) Released() bool {
	return r.ReleaseDate != nil && !r.ReleaseDate.IsZero()
}
