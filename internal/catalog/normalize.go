// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeTitle returns the key used for case-insensitive title matching.
// The store and the similarity index both key their title lookups with it.
func NormalizeTitle(title string) string {
	// A Caser keeps state between calls and must not be shared across goroutines.
	return cases.Fold().String(title)
}

// containsFold reports whether needle occurs in haystack ignoring case.
// Both arguments must already be folded.
func containsFold(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
