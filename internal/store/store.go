package store

import (
	"context"
	"errors"

	"praetordesk/internal/models"
)

// ErrNotFound is wrapped by errors for ids that do not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for data persistence operations.
type Store interface {
	// Airdrop operations
	ListAirdrops(ctx context.Context) ([]models.Airdrop, error)
	GetAirdrop(ctx context.Context, id int64) (*models.Airdrop, error)
	CreateAirdrop(ctx context.Context, airdrop *models.Airdrop) error
	UpdateAirdrop(ctx context.Context, id int64, patch models.AirdropPatch) (*models.Airdrop, error)
	DeleteAirdrop(ctx context.Context, id int64) error
	ReorderAirdrops(ctx context.Context, items []models.PositionUpdate) error

	// Airdrop type operations
	ListAirdropTypes(ctx context.Context) ([]models.AirdropType, error)
	GetAirdropType(ctx context.Context, id int64) (*models.AirdropType, error)
	CreateAirdropType(ctx context.Context, airdropType *models.AirdropType) error

	// Daily task operations
	ListDailyTasks(ctx context.Context, airdropID int64) ([]models.DailyTask, error)
	GetDailyTask(ctx context.Context, id int64) (*models.DailyTask, error)
	CreateDailyTask(ctx context.Context, task *models.DailyTask) error
	DeleteDailyTask(ctx context.Context, id int64) error
	ReorderDailyTasks(ctx context.Context, airdropID int64, items []models.PositionUpdate) error
	MarkDailyTaskDone(ctx context.Context, id int64, date string) (*models.DailyTask, error)

	// Project operations
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	// Project task operations
	ListProjectTasks(ctx context.Context, projectID int64) ([]models.ProjectTask, error)
	GetProjectTask(ctx context.Context, id int64) (*models.ProjectTask, error)
	CreateProjectTask(ctx context.Context, task *models.ProjectTask) error
	UpdateProjectTask(ctx context.Context, id int64, patch models.ProjectTaskPatch) (*models.ProjectTask, error)
	DeleteProjectTask(ctx context.Context, id int64) error
	ReorderProjectTasks(ctx context.Context, projectID int64, items []models.PositionUpdate) error

	// Idea operations
	ListIdeas(ctx context.Context) ([]models.Idea, error)
	GetIdea(ctx context.Context, id int64) (*models.Idea, error)
	CreateIdea(ctx context.Context, idea *models.Idea) error
	UpdateIdea(ctx context.Context, id int64, patch models.IdeaPatch) (*models.Idea, error)
	DeleteIdea(ctx context.Context, id int64) error

	// House item operations
	ListHouseItems(ctx context.Context) ([]models.HouseItem, error)
	GetHouseItem(ctx context.Context, id int64) (*models.HouseItem, error)
	CreateHouseItem(ctx context.Context, item *models.HouseItem) error
	UpdateHouseItem(ctx context.Context, id int64, patch models.HouseItemPatch) (*models.HouseItem, error)
	DeleteHouseItem(ctx context.Context, id int64) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}
