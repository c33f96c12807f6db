// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"fmt"
	"time"
)

// DefaultMinVotes is the vote floor used by VotesByTitle when none is configured.
const DefaultMinVotes = 2000

// directorJob is the crew job value that marks a director credit.
const directorJob = "Director"

// TitleScore is the score summary of one film.
type TitleScore struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteAverage float64 `json:"vote_average"`
}

// TitleVotes is the vote summary of one film.
type TitleVotes struct {
	Title       string  `json:"title"`
	VoteCount   int64   `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
}

// ActorSummary aggregates the films whose cast mentions an actor.
type ActorSummary struct {
	Actor       string  `json:"actor"`
	FilmCount   int     `json:"film_count"`
	TotalReturn float64 `json:"total_return"`
	MeanReturn  float64 `json:"mean_return"`
}

// DirectorFilm is one film credited to a director.
type DirectorFilm struct {
	Title       string     `json:"title"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Return      float64    `json:"return"`
	Budget      float64    `json:"budget"`
	Revenue     float64    `json:"revenue"`
}

// CountByReleaseMonth counts films released in month, any year.
// Records without a release date are not counted.
func (s *Store) CountByReleaseMonth(month time.Month) int {
	n := 0
	for i := range s.records {
		if s.records[i].Released() && s.records[i].ReleaseDate.Month() == month {
			n++
		}
	}
	return n
}

// CountByReleaseWeekday counts films released on day of the week.
func (s *Store) CountByReleaseWeekday(day time.Weekday) int {
	n := 0
	for i := range s.records {
		if s.records[i].Released() && s.records[i].ReleaseDate.Weekday() == day {
			n++
		}
	}
	return n
}

// ScoreByTitle returns release year and vote average of the first film matching title.
func (s *Store) ScoreByTitle(title string) (TitleScore, error) {
	rec, err := s.byTitleRecord(title)
	if err != nil {
		return TitleScore{}, err
	}
	return TitleScore{Title: rec.Title, ReleaseYear: rec.ReleaseYear, VoteAverage: rec.VoteAverage}, nil
}

// VotesByTitle returns the vote summary of the first film matching title.
// Films with fewer than minVotes votes yield ErrInsufficientVotes.
func (s *Store) VotesByTitle(title string, minVotes int64) (TitleVotes, error) {
	rec, err := s.byTitleRecord(title)
	if err != nil {
		return TitleVotes{}, err
	}
	if rec.VoteCount < minVotes {
		return TitleVotes{}, fmt.Errorf("%w: %q has %d, need %d", ErrInsufficientVotes, rec.Title, rec.VoteCount, minVotes)
	}
	return TitleVotes{Title: rec.Title, VoteCount: rec.VoteCount, VoteAverage: rec.VoteAverage}, nil
}

// ActorStats summarizes the films whose cast contains name, ignoring case.
func (s *Store) ActorStats(name string) (ActorSummary, error) {
	needle := NormalizeTitle(name)
	summary := ActorSummary{Actor: name}

	for i := range s.records {
		if !containsFold(s.castFolded[i], needle) {
			continue
		}
		summary.FilmCount++
		summary.TotalReturn += s.records[i].Return
	}

	if summary.FilmCount == 0 {
		return ActorSummary{}, fmt.Errorf("%w: no films with actor %q", ErrNotFound, name)
	}
	summary.MeanReturn = summary.TotalReturn / float64(summary.FilmCount)
	return summary, nil
}

// DirectorFilms lists, in load order, the director credits whose crew
// contains name, ignoring case.
func (s *Store) DirectorFilms(name string) ([]DirectorFilm, error) {
	needle := NormalizeTitle(name)
	var films []DirectorFilm

	for i := range s.records {
		rec := &s.records[i]
		if rec.Job != directorJob || !containsFold(s.crewFolded[i], needle) {
			continue
		}
		films = append(films, DirectorFilm{
			Title:       rec.Title,
			ReleaseDate: rec.ReleaseDate,
			Return:      rec.Return,
			Budget:      rec.Budget,
			Revenue:     rec.Revenue,
		})
	}

	if len(films) == 0 {
		return nil, fmt.Errorf("%w: no films by director %q", ErrNotFound, name)
	}
	return films, nil
}
