package repository

import (
	"context"

	"productivity-planner/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Lookups that find nothing return a zero-value Task and no error.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	ListTasksByIDs(ctx context.Context, opt ListTasksByIDsOptions) ([]model.Task, error)
	ListScheduledTasks(ctx context.Context, opt ListScheduledTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
