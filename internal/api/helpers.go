// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	codeValidation        = "VALIDATION_ERROR"
	codeNotFound          = "NOT_FOUND"
	codeInsufficientVotes = "INSUFFICIENT_VOTES"
	codeNotReady          = "NOT_READY"
	codeInternal          = "INTERNAL_ERROR"
	codeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
// A Cache-Control header set by the caller is kept.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=60")
	}
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope timed from start.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends a prepared APIError, keeping its details.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondServiceError maps catalog and service errors to HTTP statuses.
// Expected outcomes (not found, not ready) are not logged as errors.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, recommend.ErrNotReady):
		w.Header().Set("Retry-After", "5")
		respondError(w, http.StatusServiceUnavailable, codeNotReady, "Catalog index is still building", nil)
	case errors.Is(err, catalog.ErrNotFound):
		respondError(w, http.StatusNotFound, codeNotFound, notFoundMessage, nil)
	case errors.Is(err, catalog.ErrInsufficientVotes):
		respondError(w, http.StatusBadRequest, codeInsufficientVotes, "Movie does not have enough votes", nil)
	default:
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Catalog request failed")
		respondError(w, http.StatusInternalServerError, codeInternal, "Internal server error", nil)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return toModelError(validationErr.ToAPIError())
}

func toModelError(apiErr *validation.APIError) *models.APIError {
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// pathParam returns the decoded chi path parameter.
// chi routes on RawPath when it is set, leaving parameters escaped there.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
