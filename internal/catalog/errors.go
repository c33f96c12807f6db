// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record matches a lookup.
	ErrNotFound = errors.New("movie not found")

	// ErrInsufficientVotes is returned by VotesByTitle when the vote count
	// is below the requested floor.
	ErrInsufficientVotes = errors.New("movie does not have enough votes")
)

// Reasons reported in LoadError.Reason.
const (
	ReasonMissing       = "missing"
	ReasonUnreadable    = "unreadable"
	ReasonMissingColumn = "missing_column"
)

// LoadError reports a snapshot that could not be turned into a Store.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("catalog load %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("catalog load %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InvariantViolation is the panic value raised when an ordinal outside
// [0, Len) reaches the store. It indicates a programming error, never bad input.
type InvariantViolation struct {
	Op      string
	Ordinal int
	Len     int
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("catalog invariant violation: %s ordinal %d outside [0,%d)", v.Op, v.Ordinal, v.Len)
}
