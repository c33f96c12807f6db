// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Source reads the rows of a snapshot in file order.
// Implementations report problems as *LoadError where they can classify them.
type Source interface {
	ReadSnapshot(ctx context.Context, path string) ([]Record, error)
}

// Store is the immutable, ordinal-indexed movie collection.
type Store struct {
	path    string
	records []Record
	byTitle map[string]int

	// folded copies of the substring-searched columns
	castFolded []string
	crewFolded []string
}

// Load reads path through src and builds a Store from the rows in file order.
// Any failure is returned as a *LoadError.
func Load(ctx context.Context, src Source, path string) (*Store, error) {
	records, err := src.ReadSnapshot(ctx, path)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LoadError{Path: path, Reason: ReasonUnreadable, Err: err}
	}

	s := New(records)
	s.path = path
	return s, nil
}

// New builds a Store from records, assigning ordinals 0..len-1 in slice order.
// The slice is copied; later changes by the caller are not observed.
func New(records []Record) *Store {
	s := &Store{
		records:    make([]Record, len(records)),
		byTitle:    make(map[string]int, len(records)),
		castFolded: make([]string, len(records)),
		crewFolded: make([]string, len(records)),
	}

	for i := range records {
		rec := records[i]
		rec.Ordinal = i
		s.records[i] = rec

		key := NormalizeTitle(rec.Title)
		if _, seen := s.byTitle[key]; !seen {
			s.byTitle[key] = i
		}
		s.castFolded[i] = NormalizeTitle(rec.Cast)
		s.crewFolded[i] = NormalizeTitle(rec.Crew)
	}

	return s
}

// Path returns the snapshot path the store was loaded from, or "" for New.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// LookupByTitle returns the ordinal of the first record whose title matches
// title case-insensitively.
func (s *Store) LookupByTitle(title string) (int, error) {
	ord, ok := s.byTitle[NormalizeTitle(title)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return ord, nil
}

// GetByOrdinal returns the record at ordinal.
// It panics with *InvariantViolation when ordinal is out of range.
func (s *Store) GetByOrdinal(ordinal int) Record {
	if ordinal < 0 || ordinal >= len(s.records) {
		panic(&InvariantViolation{Op: "GetByOrdinal", Ordinal: ordinal, Len: len(s.records)})
	}
	return s.records[ordinal]
}

// Titles returns the title column in ordinal order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.records))
	for i := range s.records {
		titles[i] = s.records[i].Title
	}
	return titles
}

// byTitleRecord resolves title to its record pointer for the read-only query helpers.
func (s *Store) byTitleRecord(title string) (*Record, error) {
	ord, err := s.LookupByTitle(title)
	if err != nil {
		return nil, err
	}
	return &s.records[ord], nil
}
