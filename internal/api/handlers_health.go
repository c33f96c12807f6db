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

// Root answers the bare service URL with a short greeting.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"message": "Marquee API is running",
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive handles liveness probe requests.
// It succeeds as long as the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK once a catalog snapshot is being served, 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
		return
	}

	health := models.HealthStatus{
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	statusCode := http.StatusServiceUnavailable
	status := "not_ready"
	if snap := h.service.Snapshot(); snap != nil {
		builtAt := snap.BuiltAt
		health.Ready = true
		health.Generation = snap.Generation
		health.Records = snap.Store.Len()
		health.Vocabulary = snap.Index.VocabularySize()
		health.BuiltAt = &builtAt
		health.BuildTimeMS = snap.BuildDuration.Milliseconds()
		health.SnapshotSource = snap.Store.Path()
		statusCode = http.StatusOK
		status = "ready"
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
