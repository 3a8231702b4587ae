// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Wrapping

Middleware.Wrap applies, outermost first:

  - WithRequestID: propagates or generates X-Request-ID (google/uuid)
  - WithRecovery: logs panics with a stack and answers 500
  - WithLogging: one zap line per request (method, path, status, duration)
  - WithMetrics: Prometheus request count and latency by route pattern

	mw := middleware.New(logger, m)
	mux.HandleFunc("GET /api/names", mw.Wrap("/api/names", h.ListNames))

# Admin Guard

RequireAdmin checks the admin_session cookie:

	mw.Wrap(p, middleware.RequireAdmin(adminAuth, h.Seed))

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusConflict, models.CodeTargetTaken, "...")

Error responses have the shape:

	{"error": "Conflict", "code": "target_taken", "message": "..."}

# CORS

CORS echoes the request origin and allows credentials so the admin cookie
works from a separate frontend.

# Client IP

GetClientIP checks X-Forwarded-For, X-Real-IP, then RemoteAddr.
*/
package middleware
