// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/gift-draw/db"
	"github.com/danielhkuo/gift-draw/models"
)

// SQLStore keeps the roster in the participant table of PostgreSQL or SQLite.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(conn *sql.DB) *SQLStore {
	return &SQLStore{db: conn}
}

func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	return db.CreateSchema(ctx, s.db)
}

func (s *SQLStore) ListAll(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, selected_target_id FROM participant ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}

	return participants, nil
}

func (s *SQLStore) FindByName(ctx context.Context, name string) (*models.Participant, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, selected_target_id FROM participant WHERE name = $1
	`, name)
	return scanOne(row)
}

func (s *SQLStore) FindByID(ctx context.Context, id int64) (*models.Participant, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, selected_target_id FROM participant WHERE id = $1
	`, id)
	return scanOne(row)
}

func (s *SQLStore) ListTakenTargets(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT selected_target_id FROM participant
		WHERE selected_target_id IS NOT NULL
		ORDER BY selected_target_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query taken targets: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan taken target: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read taken targets: %w", err)
	}

	return ids, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participant`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

// ReplaceAll drops and recreates the table in one transaction, so readers
// see either the old generation or the new one.
func (s *SQLStore) ReplaceAll(ctx context.Context, names []string) (int, error) {
	clean := CleanNames(names)
	if len(clean) == 0 {
		return 0, fmt.Errorf("%w: no valid names provided", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := db.ResetSchema(ctx, tx); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO participant (id, name) VALUES ($1, $2)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, name := range clean {
		if _, err := stmt.ExecContext(ctx, int64(i+1), name); err != nil {
			if db.IsUniqueViolation(err) {
				return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
			}
			return 0, fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit roster: %w", err)
	}

	return len(clean), nil
}

// ClaimTarget is a single UPDATE: the WHERE clause makes it write-once per
// picker and only matches while the target row exists in the current
// generation; the UNIQUE constraint on selected_target_id rejects a second
// holder of the same target.
func (s *SQLStore) ClaimTarget(ctx context.Context, pickerID, targetID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE participant SET selected_target_id = $1
		WHERE id = $2 AND selected_target_id IS NULL
		  AND EXISTS (SELECT 1 FROM participant WHERE id = $1)
	`, targetID, pickerID)
	if err != nil {
		switch {
		case db.IsUniqueViolation(err):
			return ErrTargetTaken
		case db.IsCheckViolation(err):
			return ErrSelfSelection
		}
		return fmt.Errorf("failed to update selection: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Nothing matched: either the target is gone or the picker cannot claim
	if _, err := s.FindByID(ctx, targetID); err != nil {
		return err
	}
	return ErrAlreadyAssigned
}

func (s *SQLStore) Close(_ context.Context) error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row scanner) (*models.Participant, error) {
	var p models.Participant
	var selected sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &selected); err != nil {
		return nil, err
	}
	if selected.Valid {
		target := selected.Int64
		p.SelectedTargetID = &target
	}
	return &p, nil
}

func scanOne(row *sql.Row) (*models.Participant, error) {
	p, err := scanParticipant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query participant: %w", err)
	}
	return p, nil
}
