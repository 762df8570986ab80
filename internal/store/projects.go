package store

import (
	"context"
	"database/sql"
	"fmt"

	"praetordesk/internal/models"
)

const projectColumns = `id, name, description, status, created_at, updated_at`

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Status,
		scanTime(&p.CreatedAt),
		scanTime(&p.UpdatedAt),
	)
	return p, err
}

func getProject(ctx context.Context, q querier, id int64) (*models.Project, error) {
	row := q.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, notFound(err, "project", id)
	}
	return &p, nil
}

// ListProjects retrieves all projects, newest first.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// GetProject retrieves a project by ID.
func (s *SQLiteStore) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return getProject(ctx, s.db, id)
}

// CreateProject creates a new project. A zero status defaults to active.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *models.Project) error {
	if project.Status == 0 {
		project.Status = models.StatusActive
	}
	if err := project.Validate(); err != nil {
		return err
	}

	now := s.now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (name, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, project.Name, project.Description, project.Status, formatTime(now), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	project.ID = id
	project.CreatedAt = now
	project.UpdatedAt = now
	return nil
}

// UpdateProject applies patch to the project with the given ID.
func (s *SQLiteStore) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	var updated *models.Project

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		p, err := getProject(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(p, s.now()); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE projects SET name = ?, description = ?, status = ?, updated_at = ? WHERE id = ?
		`, p.Name, p.Description, p.Status, formatTime(p.UpdatedAt), id)
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProject deletes a project and its associated tasks.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return requireRow(result, "project", id)
}

const projectTaskColumns = `id, project_id, title, done, position, created_at, updated_at`

func scanProjectTask(row rowScanner) (models.ProjectTask, error) {
	var t models.ProjectTask
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Done,
		&t.Position,
		scanTime(&t.CreatedAt),
		scanTime(&t.UpdatedAt),
	)
	return t, err
}

func getProjectTask(ctx context.Context, q querier, id int64) (*models.ProjectTask, error) {
	row := q.QueryRowContext(ctx, `SELECT `+projectTaskColumns+` FROM project_tasks WHERE id = ?`, id)
	t, err := scanProjectTask(row)
	if err != nil {
		return nil, notFound(err, "project task", id)
	}
	return &t, nil
}

// ListProjectTasks retrieves the tasks of a project ordered by position.
func (s *SQLiteStore) ListProjectTasks(ctx context.Context, projectID int64) ([]models.ProjectTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+projectTaskColumns+`
		FROM project_tasks WHERE project_id = ? ORDER BY position ASC, id ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.ProjectTask{}
	for rows.Next() {
		t, err := scanProjectTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// GetProjectTask retrieves a project task by ID.
func (s *SQLiteStore) GetProjectTask(ctx context.Context, id int64) (*models.ProjectTask, error) {
	return getProjectTask(ctx, s.db, id)
}

// CreateProjectTask appends a task to the end of its project's list.
func (s *SQLiteStore) CreateProjectTask(ctx context.Context, task *models.ProjectTask) error {
	if err := task.Validate(); err != nil {
		return err
	}

	now := s.now()
	var id int64
	var position int

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := ensureExists(ctx, tx, "projects", "project", task.ProjectID); err != nil {
			return err
		}

		var err error
		position, err = projectTaskCollection.nextPosition(ctx, tx, task.ProjectID)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO project_tasks (project_id, title, done, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, task.ProjectID, task.Title, task.Done, position, formatTime(now), formatTime(now))
		if err != nil {
			return fmt.Errorf("failed to create project task: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	task.ID = id
	task.Position = position
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// UpdateProjectTask applies patch to the task with the given ID.
func (s *SQLiteStore) UpdateProjectTask(ctx context.Context, id int64, patch models.ProjectTaskPatch) (*models.ProjectTask, error) {
	var updated *models.ProjectTask

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		t, err := getProjectTask(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(t, s.now()); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE project_tasks SET title = ?, done = ?, updated_at = ? WHERE id = ?
		`, t.Title, t.Done, formatTime(t.UpdatedAt), id)
		if err != nil {
			return fmt.Errorf("failed to update project task: %w", err)
		}

		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProjectTask deletes a project task by ID.
func (s *SQLiteStore) DeleteProjectTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM project_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project task: %w", err)
	}
	return requireRow(result, "project task", id)
}

// ReorderProjectTasks updates task positions within a project.
func (s *SQLiteStore) ReorderProjectTasks(ctx context.Context, projectID int64, items []models.PositionUpdate) error {
	return s.reorder(ctx, projectTaskCollection, projectID, items)
}
