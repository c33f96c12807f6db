// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"errors"
	"testing"
)

func titled(titles ...string) []Record {
	records := make([]Record, len(titles))
	for i, t := range titles {
		records[i] = Record{Title: t}
	}
	return records
}

func TestNewAssignsOrdinalsInOrder(t *testing.T) {
	t.Parallel()

	input := titled("The Matrix", "", "Dune", "Heat")
	input[2].Ordinal = 99 // ignored; ordinals come from position

	s := New(input)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		rec := s.GetByOrdinal(i)
		if rec.Ordinal != i {
			t.Errorf("GetByOrdinal(%d).Ordinal = %d", i, rec.Ordinal)
		}
		if rec.Title != input[i].Title {
			t.Errorf("GetByOrdinal(%d).Title = %q, want %q", i, rec.Title, input[i].Title)
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	input := titled("Alien")
	s := New(input)
	input[0].Title = "Aliens"

	if got := s.GetByOrdinal(0).Title; got != "Alien" {
		t.Errorf("store observed caller mutation: %q", got)
	}
}

func TestLookupByTitle(t *testing.T) {
	t.Parallel()

	s := New(titled("The Matrix", "Dune", "Heat", "Alien", "Se7en", "Dune", "Amélie"))

	tests := []struct {
		name    string
		title   string
		want    int
		wantErr bool
	}{
		{"exact", "The Matrix", 0, false},
		{"lower case", "the matrix", 0, false},
		{"upper case", "THE MATRIX", 0, false},
		{"duplicate keeps first seen", "dune", 1, false},
		{"non ascii fold", "AMÉLIE", 6, false},
		{"unknown", "Nonexistent Film", 0, true},
		{"partial is not a match", "Matrix", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := s.LookupByTitle(tt.title)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("LookupByTitle(%q) error = %v, want ErrNotFound", tt.title, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupByTitle(%q) unexpected error: %v", tt.title, err)
			}
			if got != tt.want {
				t.Errorf("LookupByTitle(%q) = %d, want %d", tt.title, got, tt.want)
			}
		})
	}
}

func TestGetByOrdinalOutOfRangePanics(t *testing.T) {
	t.Parallel()

	s := New(titled("Heat", "Alien"))

	for _, ord := range []int{-1, 2, 100} {
		func() {
			defer func() {
				r := recover()
				v, ok := r.(*InvariantViolation)
				if !ok {
					t.Fatalf("GetByOrdinal(%d) panic = %v, want *InvariantViolation", ord, r)
				}
				if v.Ordinal != ord || v.Len != 2 {
					t.Errorf("violation = %+v", v)
				}
			}()
			s.GetByOrdinal(ord)
		}()
	}
}

func TestTitles(t *testing.T) {
	t.Parallel()

	s := New(titled("A Title", "", "B Title"))
	got := s.Titles()
	want := []string{"A Title", "", "B Title"}
	if len(got) != len(want) {
		t.Fatalf("Titles() len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Titles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

type fakeSource struct {
	records []Record
	err     error
}

func (f fakeSource) ReadSnapshot(_ context.Context, _ string) ([]Record, error) {
	return f.records, f.err
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		s, err := Load(context.Background(), fakeSource{records: titled("Heat")}, "movies.parquet")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Len() != 1 || s.Path() != "movies.parquet" {
			t.Errorf("Load() = len %d path %q", s.Len(), s.Path())
		}
	})

	t.Run("load error passes through", func(t *testing.T) {
		t.Parallel()
		src := fakeSource{err: &LoadError{Path: "x", Reason: ReasonMissingColumn}}
		_, err := Load(context.Background(), src, "x")
		var le *LoadError
		if !errors.As(err, &le) || le.Reason != ReasonMissingColumn {
			t.Fatalf("Load() error = %v, want missing_column LoadError", err)
		}
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("disk on fire")
		_, err := Load(context.Background(), fakeSource{err: cause}, "y")
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("Load() error = %v, want *LoadError", err)
		}
		if le.Reason != ReasonUnreadable || le.Path != "y" {
			t.Errorf("LoadError = %+v", le)
		}
		if !errors.Is(err, cause) {
			t.Error("LoadError should unwrap to the cause")
		}
	})
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"The Matrix", "the matrix"},
		{"THE MATRIX", "the matrix"},
		{"Straße", "strasse"},
		{"", ""},
		{"  Heat ", "  heat "},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
