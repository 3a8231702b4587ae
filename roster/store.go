// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"

	"github.com/danielhkuo/gift-draw/models"
)

// Store is durable participant storage. Implementations enforce unique id,
// unique name and unique selected target at the storage layer.
type Store interface {
	// EnsureSchema creates or verifies tables and indexes. Call it before
	// accepting traffic.
	EnsureSchema(ctx context.Context) error

	// ListAll returns every participant ordered by id.
	ListAll(ctx context.Context) ([]models.Participant, error)
	FindByName(ctx context.Context, name string) (*models.Participant, error)
	FindByID(ctx context.Context, id int64) (*models.Participant, error)

	// ListTakenTargets returns every assigned target id in ascending order.
	ListTakenTargets(ctx context.Context) ([]int64, error)
	Count(ctx context.Context) (int, error)

	// ReplaceAll discards the current generation and seeds a new one with
	// ids 1..N in input order. Returns the number of participants created.
	ReplaceAll(ctx context.Context, names []string) (int, error)

	// ClaimTarget sets the picker's selected target in one conditional
	// write. It returns ErrAlreadyAssigned when the picker has no
	// unassigned record and ErrTargetTaken when the target is held.
	ClaimTarget(ctx context.Context, pickerID, targetID int64) error

	Close(ctx context.Context) error
}
