// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models defines the JSON shapes exchanged over the HTTP API.
//
// Every endpoint answers with an APIResponse envelope. Catalog rows are
// serialized as catalog.Record directly; the types here cover the payloads
// that have no catalog counterpart.
package models
