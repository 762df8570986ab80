package models

import (
	"strings"
	"time"
)

// Project groups an ordered list of tasks.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Validate checks that the project has valid field values.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidf("name is required")
	}
	if !p.Status.Valid() {
		return invalidf("status must be 'active', 'paused', 'completed', or 'archived'")
	}
	return nil
}

// IsOpen returns true while the project still accepts work.
func (p *Project) IsOpen() bool {
	return p.Status == StatusActive || p.Status == StatusPaused
}

// ProjectTask is a single task within a project.
type ProjectTask struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks that the task has valid field values.
func (t *ProjectTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return invalidf("title is required")
	}
	if t.ProjectID == 0 {
		return invalidf("project_id is required")
	}
	return nil
}
