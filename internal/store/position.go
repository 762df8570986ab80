package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"praetordesk/internal/models"
)

// collection is a table whose rows carry a user-defined position. When parent
// is set, positions are scoped per parent row.
type collection struct {
	table  string
	parent string
}

var (
	airdropCollection     = collection{table: "airdrops"}
	dailyTaskCollection   = collection{table: "airdrop_daily_tasks", parent: "airdrop_id"}
	projectTaskCollection = collection{table: "project_tasks", parent: "project_id"}
)

// nextPosition returns one past the highest position in scope, or 0 for an
// empty scope. It must run in the same transaction as the insert.
func (c collection) nextPosition(ctx context.Context, tx *sql.Tx, parentID int64) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(position), -1) + 1 FROM %s`, c.table)
	var args []interface{}
	if c.parent != "" {
		query += fmt.Sprintf(` WHERE %s = ?`, c.parent)
		args = append(args, parentID)
	}

	var next int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next position in %s: %w", c.table, err)
	}
	return next, nil
}

// reorder writes each (id, position) pair as given. The batch is not checked
// for gaps, duplicates or coverage, and ids outside the scope are skipped by
// the WHERE clause. Any failure leaves the caller's transaction to roll back.
func (c collection) reorder(ctx context.Context, tx *sql.Tx, parentID int64, items []models.PositionUpdate, now time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET position = ?, updated_at = ? WHERE id = ?`, c.table)
	if c.parent != "" {
		query += fmt.Sprintf(` AND %s = ?`, c.parent)
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	stamp := formatTime(now)
	for _, item := range items {
		args := []interface{}{item.Position, stamp, item.ID}
		if c.parent != "" {
			args = append(args, parentID)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to update position of %s %d: %w", c.table, item.ID, err)
		}
	}

	return nil
}

// reorder applies a batch to one collection atomically.
func (s *SQLiteStore) reorder(ctx context.Context, c collection, parentID int64, items []models.PositionUpdate) error {
	if len(items) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return c.reorder(ctx, tx, parentID, items, s.now())
	})
}

// ensureExists reports ErrNotFound when no row in table has the given id.
func ensureExists(ctx context.Context, tx *sql.Tx, table, entity string, id int64) error {
	var one int
	err := tx.QueryRowContext(ctx, fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ?`, table), id).Scan(&one)
	if err != nil {
		return notFound(err, entity, id)
	}
	return nil
}
