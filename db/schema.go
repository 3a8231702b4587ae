// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSchema creates the participant table and its constraints.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db Execer) error {
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// ResetSchema drops the participant table and recreates it, constraints
// included. Run it inside a transaction so readers never see an empty table.
func ResetSchema(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, dropParticipant); err != nil {
		return fmt.Errorf("failed to drop participant table: %w", err)
	}
	return CreateSchema(ctx, db)
}

const dropParticipant = `DROP TABLE IF EXISTS participant`

// selected_target_id is UNIQUE; NULLs never collide, so only committed
// selections compete for a target.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS participant (
    id BIGINT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    selected_target_id BIGINT UNIQUE,
    CHECK (id > 0),
    CHECK (selected_target_id IS NULL OR selected_target_id <> id)
)`,
}
