// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/danielhkuo/gift-draw/metrics"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/roster"
)

// Store is the part of roster.Store the engine needs.
type Store interface {
	FindByID(ctx context.Context, id int64) (*models.Participant, error)
	ClaimTarget(ctx context.Context, pickerID, targetID int64) error
}

// Outcome labels for metrics and logs
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeSelfSelection   = "self_selection"
	OutcomeNotFound        = "not_found"
	OutcomeAlreadyAssigned = "already_assigned"
	OutcomeTargetTaken     = "target_taken"
	OutcomeError           = "error"
)

type Engine struct {
	store   Store
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewEngine(store Store, logger *zap.Logger, m *metrics.Metrics) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, logger: logger, metrics: m}
}

// AttemptSelect records targetID as pickerID's gift target.
//
// The lookups below only produce early, friendlier failures. The commit is
// the store's conditional write, which re-decides AlreadyAssigned and
// TargetTaken atomically; a lost race returns the same error as the
// matching pre-check.
func (e *Engine) AttemptSelect(ctx context.Context, pickerID, targetID int64) error {
	err := e.attemptSelect(ctx, pickerID, targetID)

	outcome := Outcome(err)
	e.metrics.RecordSelection(outcome)
	if outcome == OutcomeError {
		e.logger.Error("selection failed",
			zap.Int64("picker_id", pickerID),
			zap.Int64("target_id", targetID),
			zap.Error(err),
		)
	} else {
		e.logger.Info("selection attempt",
			zap.Int64("picker_id", pickerID),
			zap.Int64("target_id", targetID),
			zap.String("outcome", outcome),
		)
	}

	return err
}

func (e *Engine) attemptSelect(ctx context.Context, pickerID, targetID int64) error {
	if pickerID < 1 || targetID < 1 {
		return roster.ErrInvalidInput
	}
	if pickerID == targetID {
		return roster.ErrSelfSelection
	}

	picker, err := e.store.FindByID(ctx, pickerID)
	if err != nil {
		return err
	}
	if picker.HasSelection() {
		return roster.ErrAlreadyAssigned
	}

	if _, err := e.store.FindByID(ctx, targetID); err != nil {
		return err
	}

	return e.store.ClaimTarget(ctx, pickerID, targetID)
}

// Outcome maps an AttemptSelect error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, roster.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, roster.ErrSelfSelection):
		return OutcomeSelfSelection
	case errors.Is(err, roster.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, roster.ErrAlreadyAssigned):
		return OutcomeAlreadyAssigned
	case errors.Is(err, roster.ErrTargetTaken):
		return OutcomeTargetTaken
	default:
		return OutcomeError
	}
}
