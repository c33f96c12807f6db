// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor provides process supervision for Marquee using suture v4.

The tree organizes the long-running services into two layers:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── CatalogReloadService (if CATALOG_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff by its own layer, so a failing
reload loop never takes the HTTP server down with it.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewCatalogReloadService(svc, interval, logging.WithComponent("reload")))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped")
	}

Supervisor events (service start, failure, backoff) are logged through the
sutureslog adapter onto the zerolog-backed slog logger.
*/
package supervisor
