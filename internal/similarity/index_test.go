// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package similarity

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/tomtom215/marquee/internal/catalog"
)

const epsilon = 1e-12

func matrixFixture() *Index {
	return Build([]string{"The Matrix", "The Matrix Reloaded", "Inception", ""})
}

func TestBuildWeights(t *testing.T) {
	t.Parallel()

	idx := matrixFixture()

	if idx.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", idx.Len())
	}
	if idx.VocabularySize() != 3 {
		t.Errorf("VocabularySize() = %d, want 3 (matrix, reloaded, inception)", idx.VocabularySize())
	}

	wantMatrix := math.Log(5.0/3.0) + 1
	if got := idx.IDF("matrix"); math.Abs(got-wantMatrix) > epsilon {
		t.Errorf("IDF(matrix) = %v, want %v", got, wantMatrix)
	}
	wantReloaded := math.Log(5.0/2.0) + 1
	if got := idx.IDF("reloaded"); math.Abs(got-wantReloaded) > epsilon {
		t.Errorf("IDF(reloaded) = %v, want %v", got, wantReloaded)
	}
	if got := idx.IDF("the"); got != 0 {
		t.Errorf("IDF(the) = %v, want 0 for a stop word", got)
	}

	for ord := 0; ord < 3; ord++ {
		if n := idx.Vector(ord).Norm(); math.Abs(n-1) > 1e-9 {
			t.Errorf("Vector(%d).Norm() = %v, want 1", ord, n)
		}
	}
	if v := idx.Vector(3); len(v) != 0 {
		t.Errorf("empty title vector = %v, want zero vector", v)
	}

	// cos("The Matrix", "The Matrix Reloaded") = idf_m / sqrt(idf_m^2 + idf_r^2)
	want := wantMatrix / math.Sqrt(wantMatrix*wantMatrix+wantReloaded*wantReloaded)
	if got := idx.Similarity(0, 1); math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity(0,1) = %v, want %v", got, want)
	}
}

func TestQueryMatrixScenario(t *testing.T) {
	t.Parallel()

	idx := matrixFixture()

	got, err := idx.Query("The Matrix", 3)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Query(The Matrix, 3) = %v, want %v", got, want)
	}

	scored, err := idx.QueryScored("the matrix", 3)
	if err != nil {
		t.Fatalf("QueryScored() error = %v", err)
	}
	if scored[0].Score <= 0 {
		t.Errorf("Reloaded score = %v, want > 0", scored[0].Score)
	}
	if scored[1].Score != 0 || scored[2].Score != 0 {
		t.Errorf("unrelated scores = %v, %v, want 0", scored[1].Score, scored[2].Score)
	}
}

func TestQueryExcludesSelfAndBoundsK(t *testing.T) {
	t.Parallel()

	titles := []string{"Alien", "Aliens", "Alien 3", "Alien Resurrection", "Heat", "Dune", ""}
	idx := Build(titles)
	n := len(titles)

	for _, title := range titles {
		for k := 1; k <= n+2; k++ {
			got, err := idx.Query(title, k)
			if err != nil {
				t.Fatalf("Query(%q, %d) error = %v", title, k, err)
			}
			if want := min(k, n-1); len(got) != want {
				t.Errorf("Query(%q, %d) returned %d results, want %d", title, k, len(got), want)
			}
			self, _ := idx.Resolve(title)
			if slices.Contains(got, self) {
				t.Errorf("Query(%q, %d) = %v contains its own ordinal %d", title, k, got, self)
			}
			seen := make(map[int]bool, len(got))
			for _, ord := range got {
				if seen[ord] {
					t.Errorf("Query(%q, %d) = %v repeats %d", title, k, got, ord)
				}
				seen[ord] = true
			}
		}
	}
}

func TestQueryDefaultK(t *testing.T) {
	t.Parallel()

	titles := make([]string, 20)
	for i := range titles {
		titles[i] = fmt.Sprintf("Saw Part %d", i)
	}
	idx := Build(titles)

	for _, k := range []int{0, -3} {
		got, err := idx.Query("Saw Part 0", k)
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if len(got) != DefaultK {
			t.Errorf("Query(k=%d) returned %d results, want %d", k, len(got), DefaultK)
		}
	}
}

func TestQueryTieBreakByOrdinal(t *testing.T) {
	t.Parallel()

	// Ordinals 1, 3 and 4 are identical to each other; 2 and 5 share nothing.
	idx := Build([]string{"Godzilla", "Godzilla", "Heat", "GODZILLA", "godzilla", ""})

	got, err := idx.Query("Godzilla", 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := []int{1, 3, 4, 2, 5}
	if !slices.Equal(got, want) {
		t.Errorf("Query(Godzilla) = %v, want %v", got, want)
	}
}

func TestQueryAllEmptyTitles(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"", "", "", ""})

	got, err := idx.Query("", 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Query(empty) = %v, want %v", got, want)
	}
}

func TestQueryDeterministic(t *testing.T) {
	t.Parallel()

	titles := []string{"Star Wars", "Star Trek", "Wars of the Worlds", "Star Wars: Episode II", "Trek", "Worlds Apart", "Stars"}
	first, err := Build(titles).Query("Star Wars", 6)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Build(titles).Query("Star Wars", 6)
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if !slices.Equal(first, again) {
			t.Fatalf("run %d: Query() = %v, first run = %v", i, again, first)
		}
	}
}

func TestQueryScoresMatchSimilarity(t *testing.T) {
	t.Parallel()

	titles := []string{"Star Wars", "Star Trek", "Wars of the Worlds", "Star Wars: Episode II", "Trek", "Worlds Apart"}
	idx := Build(titles)

	scored, err := idx.QueryScored("Star Wars", len(titles))
	if err != nil {
		t.Fatalf("QueryScored() error = %v", err)
	}
	for i, m := range scored {
		if want := idx.Similarity(0, m.Ordinal); math.Abs(m.Score-want) > 1e-12 {
			t.Errorf("score of %d = %v, Similarity = %v", m.Ordinal, m.Score, want)
		}
		if i > 0 && scored[i-1].Score < m.Score {
			t.Errorf("results not sorted: %v", scored)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	t.Parallel()

	titles := []string{"Star Wars", "Star Trek", "Wars of the Worlds", "", "The The", "Trek Wars Trek"}
	idx := Build(titles)

	for a := range titles {
		if s := idx.Similarity(a, a); len(idx.Vector(a)) > 0 && math.Abs(s-1) > 1e-9 {
			t.Errorf("Similarity(%d,%d) = %v, want 1", a, a, s)
		}
		for b := range titles {
			if idx.Similarity(a, b) != idx.Similarity(b, a) {
				t.Errorf("Similarity(%d,%d) != Similarity(%d,%d)", a, b, b, a)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"Heat", "Alien", "Dune", "Se7en", "Brazil", "DUNE"})

	tests := []struct {
		title   string
		want    int
		wantErr bool
	}{
		{"dune", 2, false},
		{"DUNE", 2, false},
		{"heat", 0, false},
		{"Nonexistent Film", 0, true},
	}
	for _, tt := range tests {
		got, err := idx.Resolve(tt.title)
		if tt.wantErr {
			if !errors.Is(err, catalog.ErrNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrNotFound", tt.title, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Resolve(%q) = %d, %v, want %d", tt.title, got, err, tt.want)
		}
	}

	if _, err := idx.Query("Nonexistent Film", 5); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Query(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSingleTitleCatalog(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"Heat"})
	got, err := idx.Query("heat", 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Query() on a one-title catalog = %v, want empty", got)
	}
}

func TestOutOfRangeOrdinalPanics(t *testing.T) {
	t.Parallel()

	idx := Build([]string{"Heat", "Alien"})
	defer func() {
		if _, ok := recover().(*catalog.InvariantViolation); !ok {
			t.Error("expected *catalog.InvariantViolation panic")
		}
	}()
	idx.Similarity(0, 5)
}

func BenchmarkQuery(b *testing.B) {
	titles := make([]string, 45000)
	words := []string{"star", "love", "night", "city", "dead", "story", "war", "man", "girl", "house", "dark", "last"}
	for i := range titles {
		titles[i] = fmt.Sprintf("%s %s %d", words[i%len(words)], words[(i/7)%len(words)], i%97)
	}
	idx := Build(titles)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := idx.Query(titles[i%len(titles)], DefaultK); err != nil {
			b.Fatal(err)
		}
	}
}
