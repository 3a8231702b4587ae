// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/handlers"
	"github.com/danielhkuo/gift-draw/metrics"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/roster"
	"github.com/danielhkuo/gift-draw/selection"
)

func NewRouter(store roster.Store, cfg cliparse.Config, logger *zap.Logger, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	mw := middleware.New(logger, m)

	adminAuth := auth.NewAdminAuth(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionSecret)
	engine := selection.NewEngine(store, logger, m)

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(store, logger)
	selectionHandler := handlers.NewSelectionHandler(engine, logger)
	adminHandler := handlers.NewAdminHandler(store, adminAuth, cfg, logger, m)

	handle := func(pattern, path string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, mw.Wrap(path, h))
	}
	admin := func(pattern, path string, h http.HandlerFunc) {
		handle(pattern, path, middleware.RequireAdmin(adminAuth, h))
	}

	// Health check and scrape endpoint get request ids and logs, not metrics
	handle("GET /health", "/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if m != nil {
		handle("GET /metrics", "/metrics", m.Handler().ServeHTTP)
	}

	// Public roster and selection
	handle("GET /api/names", "/api/names", participantHandler.ListNames)
	handle("GET /api/taken", "/api/taken", participantHandler.ListTaken)
	handle("POST /api/login", "/api/login", participantHandler.Login)
	handle("POST /api/select", "/api/select", selectionHandler.Select)

	// Admin
	handle("POST /api/admin/login", "/api/admin/login", adminHandler.Login)
	handle("POST /api/admin/logout", "/api/admin/logout", adminHandler.Logout)
	admin("POST /api/admin/seed", "/api/admin/seed", adminHandler.Seed)
	admin("GET /api/admin/seed", "/api/admin/seed", adminHandler.SeedCount)
	admin("GET /api/admin/players", "/api/admin/players", adminHandler.Players)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gift-draw API v1"))
	})

	return middleware.CORS(cfg.CORSOrigins)(mux)
}
