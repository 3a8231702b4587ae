// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/roster"
)

type ParticipantHandler struct {
	store  roster.Store
	logger *zap.Logger
}

func NewParticipantHandler(store roster.Store, logger *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{store: store, logger: logger}
}

// ListNames handles GET /api/names
func (h *ParticipantHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	participants, err := h.store.ListAll(r.Context())
	if err != nil {
		writeRosterError(w, h.logger, err, "")
		return
	}

	entries := make([]models.NameEntry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, models.NameEntry{
			ID:          p.ID,
			Name:        p.Name,
			DisplayName: roster.FormatDisplayName(p.Name),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.NamesResponse{Participants: entries})
}

// ListTaken handles GET /api/taken
//
// The result is a hint for the UI; AttemptSelect makes the real decision.
func (h *ParticipantHandler) ListTaken(w http.ResponseWriter, r *http.Request) {
	ids, err := h.store.ListTakenTargets(r.Context())
	if err != nil {
		writeRosterError(w, h.logger, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TakenResponse{IDs: ids})
}

// Login handles POST /api/login
func (h *ParticipantHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid JSON")
		return
	}

	// Names are matched exactly as stored; only surrounding space is ignored
	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Name is required")
		return
	}

	participant, err := h.store.FindByName(r.Context(), name)
	if err != nil {
		writeRosterError(w, h.logger, err, "Participant not found")
		return
	}

	h.logger.Info("participant logged in", zap.Int64("participant_id", participant.ID))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Participant: *participant})
}
