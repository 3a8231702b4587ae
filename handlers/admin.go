// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/metrics"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/roster"
)

type AdminHandler struct {
	store   roster.Store
	auth    *auth.AdminAuth
	cfg     cliparse.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewAdminHandler(store roster.Store, adminAuth *auth.AdminAuth, cfg cliparse.Config, logger *zap.Logger, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{store: store, auth: adminAuth, cfg: cfg, logger: logger, metrics: m}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid JSON")
		return
	}

	if err := h.auth.CheckPassword(req.Password); err != nil {
		h.logger.Warn("admin login rejected", zap.String("client_ip", middleware.GetClientIP(r)))
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.CodeUnauthorized, "Unauthorized")
		return
	}

	token, expires, err := h.auth.IssueSession()
	if err != nil {
		h.logger.Error("failed to issue admin session", zap.Error(err))
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeInternal, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(auth.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   !h.cfg.IsDev(),
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.cfg.IsDev(),
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Seed handles POST /api/admin/seed
//
// Destroys the current roster, selections included.
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req models.SeedRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid JSON")
		return
	}

	if len(req.Names) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "names must be a non-empty array")
		return
	}

	count, err := h.store.ReplaceAll(r.Context(), req.Names)
	if errors.Is(err, roster.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "No valid names provided")
		return
	}
	if err != nil {
		writeRosterError(w, h.logger, err, "")
		return
	}

	h.metrics.RecordReseed(count)
	h.logger.Info("roster reseeded", zap.Int("count", count))

	middleware.JSONResponse(w, http.StatusOK, models.SeedResponse{OK: true, Count: count})
}

// SeedCount handles GET /api/admin/seed
func (h *AdminHandler) SeedCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.Count(r.Context())
	if err != nil {
		writeRosterError(w, h.logger, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{Count: count})
}

// Players handles GET /api/admin/players
func (h *AdminHandler) Players(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListAll(r.Context())
	if err != nil {
		writeRosterError(w, h.logger, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminRosterResponse{
		Participants: resolveTargets(participants),
	})
}

// resolveTargets attaches the target's name to every participant that
// already chose one
func resolveTargets(participants []models.Participant) []models.AdminParticipant {
	names := make(map[int64]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}

	rows := make([]models.AdminParticipant, 0, len(participants))
	for _, p := range participants {
		row := models.AdminParticipant{
			ID:               p.ID,
			Name:             p.Name,
			SelectedTargetID: p.SelectedTargetID,
		}
		if p.SelectedTargetID != nil {
			if name, ok := names[*p.SelectedTargetID]; ok {
				row.SelectedTargetName = &name
			}
		}
		rows = append(rows, row)
	}
	return rows
}
