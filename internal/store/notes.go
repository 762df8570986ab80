package store

import (
	"context"
	"database/sql"
	"fmt"

	"praetordesk/internal/models"
)

func scanIdea(row rowScanner) (models.Idea, error) {
	var i models.Idea
	err := row.Scan(&i.ID, &i.Title, &i.Notes, scanTime(&i.CreatedAt))
	return i, err
}

func getIdea(ctx context.Context, q querier, id int64) (*models.Idea, error) {
	row := q.QueryRowContext(ctx, `SELECT id, title, notes, created_at FROM ideas WHERE id = ?`, id)
	i, err := scanIdea(row)
	if err != nil {
		return nil, notFound(err, "idea", id)
	}
	return &i, nil
}

// ListIdeas retrieves all ideas, newest first.
func (s *SQLiteStore) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, notes, created_at FROM ideas ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, i)
	}

	return ideas, rows.Err()
}

// GetIdea retrieves an idea by ID.
func (s *SQLiteStore) GetIdea(ctx context.Context, id int64) (*models.Idea, error) {
	return getIdea(ctx, s.db, id)
}

// CreateIdea creates a new idea.
func (s *SQLiteStore) CreateIdea(ctx context.Context, idea *models.Idea) error {
	if err := idea.Validate(); err != nil {
		return err
	}

	now := s.now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO ideas (title, notes, created_at) VALUES (?, ?, ?)
	`, idea.Title, idea.Notes, formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	idea.ID = id
	idea.CreatedAt = now
	return nil
}

// UpdateIdea applies patch to the idea with the given ID. An empty patch only
// checks that the idea exists.
func (s *SQLiteStore) UpdateIdea(ctx context.Context, id int64, patch models.IdeaPatch) (*models.Idea, error) {
	if patch.Empty() {
		return getIdea(ctx, s.db, id)
	}

	var updated *models.Idea
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		i, err := getIdea(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(i); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE ideas SET title = ?, notes = ? WHERE id = ?`, i.Title, i.Notes, id); err != nil {
			return fmt.Errorf("failed to update idea: %w", err)
		}

		updated = i
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteIdea deletes an idea by ID.
func (s *SQLiteStore) DeleteIdea(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM ideas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return requireRow(result, "idea", id)
}

const houseItemColumns = `id, title, notes, done, created_at, updated_at`

func scanHouseItem(row rowScanner) (models.HouseItem, error) {
	var h models.HouseItem
	err := row.Scan(&h.ID, &h.Title, &h.Notes, &h.Done, scanTime(&h.CreatedAt), scanTime(&h.UpdatedAt))
	return h, err
}

func getHouseItem(ctx context.Context, q querier, id int64) (*models.HouseItem, error) {
	row := q.QueryRowContext(ctx, `SELECT `+houseItemColumns+` FROM house_items WHERE id = ?`, id)
	h, err := scanHouseItem(row)
	if err != nil {
		return nil, notFound(err, "house item", id)
	}
	return &h, nil
}

// ListHouseItems retrieves all house items, newest first.
func (s *SQLiteStore) ListHouseItems(ctx context.Context) ([]models.HouseItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+houseItemColumns+` FROM house_items ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list house items: %w", err)
	}
	defer rows.Close()

	items := []models.HouseItem{}
	for rows.Next() {
		h, err := scanHouseItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan house item: %w", err)
		}
		items = append(items, h)
	}

	return items, rows.Err()
}

// GetHouseItem retrieves a house item by ID.
func (s *SQLiteStore) GetHouseItem(ctx context.Context, id int64) (*models.HouseItem, error) {
	return getHouseItem(ctx, s.db, id)
}

// CreateHouseItem creates a new, not yet done, house item.
func (s *SQLiteStore) CreateHouseItem(ctx context.Context, item *models.HouseItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	now := s.now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO house_items (title, notes, done, created_at, updated_at) VALUES (?, ?, 0, ?, ?)
	`, item.Title, item.Notes, formatTime(now), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to create house item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	item.ID = id
	item.Done = false
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

// UpdateHouseItem applies patch to the house item with the given ID.
func (s *SQLiteStore) UpdateHouseItem(ctx context.Context, id int64, patch models.HouseItemPatch) (*models.HouseItem, error) {
	var updated *models.HouseItem

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		h, err := getHouseItem(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(h, s.now()); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE house_items SET title = ?, notes = ?, done = ?, updated_at = ? WHERE id = ?
		`, h.Title, h.Notes, h.Done, formatTime(h.UpdatedAt), id)
		if err != nil {
			return fmt.Errorf("failed to update house item: %w", err)
		}

		updated = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteHouseItem deletes a house item by ID.
func (s *SQLiteStore) DeleteHouseItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM house_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete house item: %w", err)
	}
	return requireRow(result, "house item", id)
}
