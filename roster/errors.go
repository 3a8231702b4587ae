// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import "errors"

// Expected outcomes. Every other error from a Store is a storage fault.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("participant not found")
	ErrSelfSelection   = errors.New("cannot select yourself")
	ErrAlreadyAssigned = errors.New("choice already saved")
	ErrTargetTaken     = errors.New("target already selected by someone else")
	ErrDuplicateName   = errors.New("duplicate participant name")
)
