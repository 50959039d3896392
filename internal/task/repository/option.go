package repository

import (
	"time"

	"productivity-planner/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Priority         model.Priority
	EstimatedMinutes int
	DueDate          time.Time
	StartTime        string
	EndTime          string
	CreatedAt        time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// A zero StartDate or EndDate leaves that side of the range open.
type ListTasksOptions struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Completed *bool
	Priority  model.Priority
	Limit     int
	Offset    int
}

// ListTasksByIDsOptions fetches the user's tasks with the given ids.
type ListTasksByIDsOptions struct {
	UserID string
	IDs    []string
}

// ListScheduledTasksOptions fetches tasks due within [StartDate, EndDate]
// that hold a start time, completed or not.
type ListScheduledTasksOptions struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

// UpdateTaskOptions carries the full new state of a Task.
type UpdateTaskOptions struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Priority         model.Priority
	EstimatedMinutes int
	DueDate          time.Time
	StartTime        string
	EndTime          string
	Completed        bool
	CompletedAt      time.Time
	UpdatedAt        time.Time
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
