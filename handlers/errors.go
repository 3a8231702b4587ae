// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/roster"
)

// writeRosterError maps a roster error kind to status, code and message.
// Anything outside the taxonomy is a storage fault and answers 500.
func writeRosterError(w http.ResponseWriter, logger *zap.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, roster.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid ids")
	case errors.Is(err, roster.ErrSelfSelection):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeSelfSelection, "Cannot select yourself")
	case errors.Is(err, roster.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, notFoundMsg)
	case errors.Is(err, roster.ErrAlreadyAssigned):
		middleware.ErrorResponse(w, http.StatusConflict, models.CodeAlreadyAssigned, "Choice already saved")
	case errors.Is(err, roster.ErrTargetTaken):
		middleware.ErrorResponse(w, http.StatusConflict, models.CodeTargetTaken, "This participant has already been selected by someone else")
	case errors.Is(err, roster.ErrDuplicateName):
		middleware.ErrorResponse(w, http.StatusConflict, models.CodeDuplicateName, err.Error())
	default:
		logger.Error("storage error", zap.Error(err))
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeInternal, "Database error")
	}
}
