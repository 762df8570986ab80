package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"praetordesk/internal/models"
)

const dailyTaskColumns = `id, airdrop_id, title, position, done_dates, created_at, updated_at`

func scanDailyTask(row rowScanner) (models.DailyTask, error) {
	var t models.DailyTask
	err := row.Scan(
		&t.ID,
		&t.AirdropID,
		&t.Title,
		&t.Position,
		&t.DoneDates,
		scanTime(&t.CreatedAt),
		scanTime(&t.UpdatedAt),
	)
	return t, err
}

func getDailyTask(ctx context.Context, q querier, id int64) (*models.DailyTask, error) {
	row := q.QueryRowContext(ctx, `SELECT `+dailyTaskColumns+` FROM airdrop_daily_tasks WHERE id = ?`, id)
	t, err := scanDailyTask(row)
	if err != nil {
		return nil, notFound(err, "daily task", id)
	}
	return &t, nil
}

func insertDailyTask(ctx context.Context, tx *sql.Tx, task *models.DailyTask, now time.Time) (int64, error) {
	if task.DoneDates == nil {
		task.DoneDates = models.DoneDates{}
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO airdrop_daily_tasks (airdrop_id, title, position, done_dates, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, task.AirdropID, task.Title, task.Position, task.DoneDates, formatTime(now), formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to create daily task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// ListDailyTasks returns the tasks of an airdrop in display order.
func (s *SQLiteStore) ListDailyTasks(ctx context.Context, airdropID int64) ([]models.DailyTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+dailyTaskColumns+`
		FROM airdrop_daily_tasks WHERE airdrop_id = ? ORDER BY position ASC, id ASC
	`, airdropID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.DailyTask{}
	for rows.Next() {
		t, err := scanDailyTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// GetDailyTask retrieves a daily task by ID.
func (s *SQLiteStore) GetDailyTask(ctx context.Context, id int64) (*models.DailyTask, error) {
	return getDailyTask(ctx, s.db, id)
}

// CreateDailyTask appends a task to the end of its airdrop's list with an
// empty completion set.
func (s *SQLiteStore) CreateDailyTask(ctx context.Context, task *models.DailyTask) error {
	if err := task.Validate(); err != nil {
		return err
	}

	now := s.now()
	var id int64
	var position int

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := ensureExists(ctx, tx, "airdrops", "airdrop", task.AirdropID); err != nil {
			return err
		}

		var err error
		position, err = dailyTaskCollection.nextPosition(ctx, tx, task.AirdropID)
		if err != nil {
			return err
		}

		pending := *task
		pending.Position = position
		pending.DoneDates = models.DoneDates{}
		id, err = insertDailyTask(ctx, tx, &pending, now)
		return err
	})
	if err != nil {
		return err
	}

	task.ID = id
	task.Position = position
	task.DoneDates = models.DoneDates{}
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// DeleteDailyTask deletes a daily task by ID.
func (s *SQLiteStore) DeleteDailyTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM airdrop_daily_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily task: %w", err)
	}
	return requireRow(result, "daily task", id)
}

// ReorderDailyTasks writes the given positions for tasks of one airdrop in one
// transaction. Tasks of other airdrops are not touched.
func (s *SQLiteStore) ReorderDailyTasks(ctx context.Context, airdropID int64, items []models.PositionUpdate) error {
	return s.reorder(ctx, dailyTaskCollection, airdropID, items)
}

// MarkDailyTaskDone records date in the task's completion set. Repeating the
// call for the same date leaves the set unchanged and skips the write. The
// read and the write share one immediate transaction, so concurrent callers
// are serialized by SQLite's write lock.
func (s *SQLiteStore) MarkDailyTaskDone(ctx context.Context, id int64, date string) (*models.DailyTask, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, err
	}

	var task *models.DailyTask
	var changed bool

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		t, err := getDailyTask(ctx, tx, id)
		if err != nil {
			return err
		}

		changed = t.DoneDates.Add(date)
		if changed {
			t.UpdatedAt = s.now()
			_, err := tx.ExecContext(ctx, `
				UPDATE airdrop_daily_tasks SET done_dates = ?, updated_at = ? WHERE id = ?
			`, t.DoneDates, formatTime(t.UpdatedAt), id)
			if err != nil {
				return fmt.Errorf("failed to update daily task: %w", err)
			}
		}

		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("daily task done", "airdrop_id", task.AirdropID, "task_id", id, "date", date, "changed", changed)
	return task, nil
}
