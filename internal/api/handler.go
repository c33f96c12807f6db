// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Handler serves the catalog and recommendation endpoints from a recommend.Service.
type Handler struct {
	service   *recommend.Service
	minVotes  int64
	startTime time.Time
}

// NewHandler creates a Handler. minVotes is the vote floor of the votes
// endpoint; a negative value selects catalog.DefaultMinVotes.
func NewHandler(service *recommend.Service, minVotes int64) *Handler {
	if minVotes < 0 {
		minVotes = catalog.DefaultMinVotes
	}
	return &Handler{
		service:   service,
		minVotes:  minVotes,
		startTime: time.Now(),
	}
}

// titleRequest is the validated form of a {title} path parameter.
type titleRequest struct {
	Title string `validate:"required,movietitle,max=500"`
}

// nameRequest is the validated form of an {name} path parameter.
type nameRequest struct {
	Name string `validate:"required,movietitle,max=200"`
}

// periodRequest is the validated form of a {month} or {day} path parameter.
type periodRequest struct {
	Period string `validate:"required,max=32"`
}
