package models

import (
	"errors"
	"testing"
	"time"
)

func TestProjectValidation_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty name should fail",
			project: Project{Name: "", Status: StatusActive},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "whitespace name should fail",
			project: Project{Name: "   ", Status: StatusActive},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "zero status should fail",
			project: Project{Name: "Test Project"},
			wantErr: true,
			errMsg:  "status must be 'active', 'paused', 'completed', or 'archived'",
		},
		{
			name:    "valid project should pass",
			project: Project{Name: "Test Project", Status: StatusPaused},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected error to wrap ErrInvalid, got %v", err)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestProject_IsOpen(t *testing.T) {
	tests := []struct {
		status   ProjectStatus
		expected bool
	}{
		{StatusActive, true},
		{StatusPaused, true},
		{StatusCompleted, false},
		{StatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			p := Project{Status: tt.status}
			if got := p.IsOpen(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProjectTaskValidation(t *testing.T) {
	tests := []struct {
		name    string
		task    ProjectTask
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty title should fail",
			task:    ProjectTask{ProjectID: 1},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "zero project ID should fail",
			task:    ProjectTask{Title: "Write docs"},
			wantErr: true,
			errMsg:  "project_id is required",
		},
		{
			name: "valid task should pass",
			task: ProjectTask{Title: "Write docs", ProjectID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestProjectPatch_Apply(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	desc := "old"
	p := Project{ID: 1, Name: "Site", Description: &desc, Status: StatusActive, CreatedAt: created, UpdatedAt: created}

	paused := StatusPaused
	if err := (ProjectPatch{Status: &paused}).Apply(&p, now); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if p.Status != StatusPaused {
		t.Errorf("expected status paused, got %s", p.Status)
	}
	if p.Name != "Site" || p.Description == nil || *p.Description != "old" {
		t.Errorf("expected untouched fields to survive, got %+v", p)
	}
	if !p.UpdatedAt.Equal(now) {
		t.Errorf("expected updated_at %v, got %v", now, p.UpdatedAt)
	}
	if !p.CreatedAt.Equal(created) {
		t.Errorf("expected created_at to be unchanged, got %v", p.CreatedAt)
	}
}

func TestProjectPatch_ApplyRejectsBlankName(t *testing.T) {
	p := Project{Name: "Site", Status: StatusActive}
	blank := " "

	err := (ProjectPatch{Name: &blank}).Apply(&p, time.Now())
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
