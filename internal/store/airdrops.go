package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"praetordesk/internal/models"
)

const airdropColumns = `id, name, url, airdrop_type_id, chain, wallet_address, position, notes, active, created_at, updated_at`

func scanAirdrop(row rowScanner) (models.Airdrop, error) {
	var a models.Airdrop
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.URL,
		&a.AirdropTypeID,
		&a.Chain,
		&a.WalletAddress,
		&a.Position,
		&a.Notes,
		&a.Active,
		scanTime(&a.CreatedAt),
		scanTime(&a.UpdatedAt),
	)
	return a, err
}

func getAirdrop(ctx context.Context, q querier, id int64) (*models.Airdrop, error) {
	row := q.QueryRowContext(ctx, `SELECT `+airdropColumns+` FROM airdrops WHERE id = ?`, id)
	a, err := scanAirdrop(row)
	if err != nil {
		return nil, notFound(err, "airdrop", id)
	}
	return &a, nil
}

// ListAirdrops returns all airdrops in display order.
func (s *SQLiteStore) ListAirdrops(ctx context.Context) ([]models.Airdrop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+airdropColumns+`
		FROM airdrops ORDER BY position ASC, created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list airdrops: %w", err)
	}
	defer rows.Close()

	airdrops := []models.Airdrop{}
	for rows.Next() {
		a, err := scanAirdrop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan airdrop: %w", err)
		}
		airdrops = append(airdrops, a)
	}

	return airdrops, rows.Err()
}

// GetAirdrop retrieves an airdrop by ID.
func (s *SQLiteStore) GetAirdrop(ctx context.Context, id int64) (*models.Airdrop, error) {
	return getAirdrop(ctx, s.db, id)
}

// CreateAirdrop appends a new airdrop to the end of the list. When the airdrop
// has a type, the type's default tasks are created with it.
func (s *SQLiteStore) CreateAirdrop(ctx context.Context, airdrop *models.Airdrop) error {
	if err := airdrop.Validate(); err != nil {
		return err
	}

	now := s.now()
	var id int64
	var position int

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var defaults []string
		if airdrop.AirdropTypeID != nil {
			t, err := getAirdropType(ctx, tx, *airdrop.AirdropTypeID)
			if err != nil {
				return err
			}
			defaults = t.DefaultTasks
		}

		var err error
		position, err = airdropCollection.nextPosition(ctx, tx, 0)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO airdrops (name, url, airdrop_type_id, chain, wallet_address, position, notes, active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, airdrop.Name, airdrop.URL, airdrop.AirdropTypeID, airdrop.Chain, airdrop.WalletAddress,
			position, airdrop.Notes, airdrop.Active, formatTime(now), formatTime(now))
		if err != nil {
			return fmt.Errorf("failed to create airdrop: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}

		for i, title := range defaults {
			task := &models.DailyTask{AirdropID: id, Title: title, Position: i}
			if _, err := insertDailyTask(ctx, tx, task, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	airdrop.ID = id
	airdrop.Position = position
	airdrop.CreatedAt = now
	airdrop.UpdatedAt = now

	s.logger.Debug("airdrop created", "id", id, "position", position)
	return nil
}

// UpdateAirdrop applies patch to the airdrop with the given ID.
func (s *SQLiteStore) UpdateAirdrop(ctx context.Context, id int64, patch models.AirdropPatch) (*models.Airdrop, error) {
	var updated *models.Airdrop

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		a, err := getAirdrop(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(a, s.now()); err != nil {
			return err
		}
		if patch.AirdropTypeID != nil {
			if err := ensureExists(ctx, tx, "airdrop_types", "airdrop type", *patch.AirdropTypeID); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE airdrops
			SET name = ?, url = ?, airdrop_type_id = ?, chain = ?, wallet_address = ?, notes = ?, active = ?, updated_at = ?
			WHERE id = ?
		`, a.Name, a.URL, a.AirdropTypeID, a.Chain, a.WalletAddress, a.Notes, a.Active, formatTime(a.UpdatedAt), id)
		if err != nil {
			return fmt.Errorf("failed to update airdrop: %w", err)
		}

		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAirdrop deletes an airdrop and its daily tasks. Remaining positions
// are left as they are.
func (s *SQLiteStore) DeleteAirdrop(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM airdrops WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete airdrop: %w", err)
	}
	return requireRow(result, "airdrop", id)
}

// ReorderAirdrops writes the given positions in one transaction.
func (s *SQLiteStore) ReorderAirdrops(ctx context.Context, items []models.PositionUpdate) error {
	return s.reorder(ctx, airdropCollection, 0, items)
}

func scanAirdropType(row rowScanner) (models.AirdropType, error) {
	var t models.AirdropType
	var defaults string

	err := row.Scan(&t.ID, &t.Name, &defaults, scanTime(&t.CreatedAt), scanTime(&t.UpdatedAt))
	if err != nil {
		return t, err
	}

	// Older rows may hold arbitrary JSON; anything but a list of titles reads as no defaults.
	if err := json.Unmarshal([]byte(defaults), &t.DefaultTasks); err != nil || t.DefaultTasks == nil {
		t.DefaultTasks = []string{}
	}
	return t, nil
}

func getAirdropType(ctx context.Context, q querier, id int64) (*models.AirdropType, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, name, default_tasks, created_at, updated_at
		FROM airdrop_types WHERE id = ?
	`, id)
	t, err := scanAirdropType(row)
	if err != nil {
		return nil, notFound(err, "airdrop type", id)
	}
	return &t, nil
}

// ListAirdropTypes returns all airdrop types ordered by name.
func (s *SQLiteStore) ListAirdropTypes(ctx context.Context) ([]models.AirdropType, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, default_tasks, created_at, updated_at
		FROM airdrop_types ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list airdrop types: %w", err)
	}
	defer rows.Close()

	types := []models.AirdropType{}
	for rows.Next() {
		t, err := scanAirdropType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan airdrop type: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// GetAirdropType retrieves an airdrop type by ID.
func (s *SQLiteStore) GetAirdropType(ctx context.Context, id int64) (*models.AirdropType, error) {
	return getAirdropType(ctx, s.db, id)
}

// CreateAirdropType creates a new airdrop type.
func (s *SQLiteStore) CreateAirdropType(ctx context.Context, airdropType *models.AirdropType) error {
	if err := airdropType.Validate(); err != nil {
		return err
	}
	if airdropType.DefaultTasks == nil {
		airdropType.DefaultTasks = []string{}
	}

	defaults, err := json.Marshal(airdropType.DefaultTasks)
	if err != nil {
		return fmt.Errorf("failed to encode default tasks: %w", err)
	}

	now := s.now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO airdrop_types (name, default_tasks, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, airdropType.Name, string(defaults), formatTime(now), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to create airdrop type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	airdropType.ID = id
	airdropType.CreatedAt = now
	airdropType.UpdatedAt = now
	return nil
}
