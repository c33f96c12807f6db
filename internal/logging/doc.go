// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides centralized zerolog-based structured logging for Marquee.
//
// Every component logs through this package so that the catalog loader, the
// similarity index build, the HTTP layer and the supervisor tree share one
// output format and one level setting.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("records", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Str("path", path).Msg("Snapshot reload failed")
//
//	// Request-scoped logging (request_id and correlation_id are attached
//	// by the HTTP middleware)
//	logging.Ctx(ctx).Info().Str("title", title).Msg("Recommendation served")
//
// # Configuration
//
// Environment Variables (mapped by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// # Suture Integration
//
// The supervisor tree expects an *slog.Logger. NewSlogLogger returns one
// backed by the global zerolog logger:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
