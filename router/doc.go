// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ pattern matching.

# Creating the Router

	handler := router.NewRouter(store, cfg, logger, m)
	server := http.Server{Handler: handler, Addr: ":3318"}

NewRouter builds the selection engine and admin authenticator, wires the
handlers, and wraps the mux in CORS.

# Routes

Public:

	GET  /health
	GET  /metrics
	GET  /api/names
	GET  /api/taken
	POST /api/login
	POST /api/select

Admin (admin_session cookie, except login/logout):

	POST /api/admin/login
	POST /api/admin/logout
	POST /api/admin/seed
	GET  /api/admin/seed
	GET  /api/admin/players

Every /api route goes through Middleware.Wrap for request id, recovery,
logging and metrics.
*/
package router
