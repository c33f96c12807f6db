// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// monthNames maps accent-free, case-folded month names to months.
// Spanish names come first; English names are accepted as well.
var monthNames = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// weekdayNames maps accent-free, case-folded weekday names to weekdays.
var weekdayNames = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
}

func init() {
	for m := time.January; m <= time.December; m++ {
		monthNames[strings.ToLower(m.String())] = m
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdayNames[strings.ToLower(d.String())] = d
	}
}

// foldName lower-cases s and strips combining marks, so "Miércoles",
// "MIERCOLES" and "miercoles" compare equal.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// parseMonth resolves a Spanish or English month name.
func parseMonth(name string) (time.Month, bool) {
	m, ok := monthNames[foldName(name)]
	return m, ok
}

// parseWeekday resolves a Spanish or English weekday name.
func parseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[foldName(name)]
	return d, ok
}
