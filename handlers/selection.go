// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
)

// Selector attempts a target claim for a picker
type Selector interface {
	AttemptSelect(ctx context.Context, pickerID, targetID int64) error
}

type SelectionHandler struct {
	engine Selector
	logger *zap.Logger
}

func NewSelectionHandler(engine Selector, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{engine: engine, logger: logger}
}

// Select handles POST /api/select
func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req models.SelectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid ids")
		return
	}

	if err := h.engine.AttemptSelect(r.Context(), req.PickerID, req.TargetID); err != nil {
		writeRosterError(w, h.logger, err, "Participant not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
