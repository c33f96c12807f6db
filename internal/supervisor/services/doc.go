// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service wrappers for Marquee components.

Each wrapper implements the suture.Service interface and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve

Catalog Reload (CatalogReloadService):
  - Rebuilds the catalog snapshot and title index on a fixed interval
  - A failed rebuild is logged and the previous snapshot keeps serving
*/
package services
