// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// periodParam reads and validates a month or weekday path parameter.
func periodParam(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	req := periodRequest{Period: pathParam(r, key)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return "", false
	}
	return req.Period, true
}

// nameParam reads and validates an actor or director path parameter.
func nameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := nameRequest{Name: pathParam(r, "name")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return "", false
	}
	return req.Name, true
}

// ReleasesByMonth counts films released in {month}, in any year.
// Month names are accepted in Spanish or English, with or without accents.
func (h *Handler) ReleasesByMonth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, ok := periodParam(w, r, "month")
	if !ok {
		return
	}

	month, ok := parseMonth(name)
	if !ok {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid month: "+name, nil)
		return
	}

	store, err := h.service.Store()
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	respondSuccess(w, models.ReleaseCount{
		Period:    name,
		Canonical: month.String(),
		Count:     store.CountByReleaseMonth(month),
	}, start)
}

// ReleasesByWeekday counts films released on {day} of the week.
func (h *Handler) ReleasesByWeekday(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, ok := periodParam(w, r, "day")
	if !ok {
		return
	}

	day, ok := parseWeekday(name)
	if !ok {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid weekday: "+name, nil)
		return
	}

	store, err := h.service.Store()
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	respondSuccess(w, models.ReleaseCount{
		Period:    name,
		Canonical: day.String(),
		Count:     store.CountByReleaseWeekday(day),
	}, start)
}

// Actor summarizes the films whose cast mentions {name}.
func (h *Handler) Actor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, ok := nameParam(w, r)
	if !ok {
		return
	}

	store, err := h.service.Store()
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	summary, err := store.ActorStats(name)
	if err != nil {
		respondServiceError(w, r, err, "Actor not found")
		return
	}
	respondSuccess(w, summary, start)
}

// Director lists the films directed by {name}.
func (h *Handler) Director(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, ok := nameParam(w, r)
	if !ok {
		return
	}

	store, err := h.service.Store()
	if err != nil {
		respondServiceError(w, r, err, "")
		return
	}
	films, err := store.DirectorFilms(name)
	if err != nil {
		respondServiceError(w, r, err, "Director not found")
		return
	}
	respondSuccess(w, models.DirectorResponse{Director: name, Films: films}, start)
}
