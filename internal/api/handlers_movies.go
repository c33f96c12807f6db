// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

const movieNotFound = "Movie not found"

// titleParam reads and validates the {title} path parameter.
// It writes a 400 response and returns false when the title is invalid.
func titleParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := titleRequest{Title: pathParam(r, "title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return "", false
	}
	return req.Title, true
}

// Movie returns the first catalog record whose title matches case-insensitively.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	record, err := h.service.LookupTitle(title)
	if err != nil {
		respondServiceError(w, r, err, movieNotFound)
		return
	}
	respondSuccess(w, record, start)
}

// MovieScore returns release year and vote average of a movie.
func (h *Handler) MovieScore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	store, err := h.service.Store()
	if err != nil {
		respondServiceError(w, r, err, movieNotFound)
		return
	}
	score, err := store.ScoreByTitle(title)
	if err != nil {
		respondServiceError(w, r, err, movieNotFound)
		return
	}
	respondSuccess(w, score, start)
}

// MovieVotes returns vote count and average of a movie that reached the vote floor.
func (h *Handler) MovieVotes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	store, err := h.service.Store()
	if err != nil {
		respondServiceError(w, r, err, movieNotFound)
		return
	}
	votes, err := store.VotesByTitle(title, h.minVotes)
	if err != nil {
		respondServiceError(w, r, err, movieNotFound)
		return
	}
	respondSuccess(w, votes, start)
}

// Recommendations returns the movies whose titles are most similar to {title}.
// The optional k query parameter bounds the result count.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	k, ok := h.parseK(w, r)
	if !ok {
		return
	}

	records, err := h.service.Recommend(title, k)
	if err != nil {
		respondServiceError(w, r, err, movieNotFound)
		return
	}

	resp := models.RecommendationResponse{
		Title:           title,
		K:               h.service.Config().ClampK(k),
		Recommendations: make([]string, len(records)),
		Movies:          records,
	}
	if resp.Movies == nil {
		resp.Movies = []catalog.Record{}
	}
	for i := range records {
		resp.Recommendations[i] = records[i].Title
	}
	respondSuccess(w, resp, start)
}

// parseK reads the k query parameter. Absent means the service default.
func (h *Handler) parseK(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("k"))
	if raw == "" {
		return 0, true
	}

	k, err := strconv.Atoi(raw)
	if err != nil {
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    codeValidation,
			Message: "k must be an integer",
			Details: map[string]interface{}{"field": "k", "value": raw},
		})
		return 0, false
	}

	tag := fmt.Sprintf("min=1,max=%d", h.service.Config().MaxK)
	if verr := validation.ValidateVar("k", k, tag); verr != nil {
		respondAPIError(w, http.StatusBadRequest, toModelError(verr.ToAPIError()))
		return 0, false
	}
	return k, true
}
