// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the gift draw API server.

Participants log in by name, receive a number, and claim one other
participant's number as their gift target. Each number can be claimed by at
most one participant and each participant claims exactly once.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:draw.db SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-secret ...

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite DSN, PostgreSQL URL or MongoDB URI
  - SESSION_SECRET (-session-secret): signs admin session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - ADMIN_PASSWORD / ADMIN_PASSWORD_HASH: admin login secret
  - LOG_LEVEL, ENV, CONFIG_PATH (-c)

# Architecture

  - selection: the target claim engine
  - roster: participant storage (SQL and MongoDB)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, metrics, recovery, CORS, admin guard, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - auth: admin password and session tokens
  - db: connections, schema and constraint error classification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
