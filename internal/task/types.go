package task

import "productivity-planner/internal/model"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	// MaxEstimatedMinutes is one week of work.
	MaxEstimatedMinutes = 7 * 24 * 60
)

// --- UseCase Inputs ---

// CreateInput carries a new task. DueDate accepts YYYY-MM-DD or a
// shortcut such as "today"; StartTime and EndTime are HH:MM.
type CreateInput struct {
	Title            string
	Description      string
	Priority         model.Priority
	EstimatedMinutes int
	DueDate          string
	StartTime        string
	EndTime          string
}

// ListInput filters the task list. Date takes a single day or a named
// range (this_week, next_7_days, ...); StartDate/EndDate set an explicit range.
type ListInput struct {
	Date      string
	StartDate string
	EndDate   string
	Completed *bool
	Priority  model.Priority
	Limit     int
	Offset    int
}

// UpdateInput is a partial update: nil fields are left untouched and
// empty strings clear optional fields.
type UpdateInput struct {
	ID               string
	Title            *string
	Description      *string
	Priority         *model.Priority
	EstimatedMinutes *int
	DueDate          *string
	StartTime        *string
	EndTime          *string
	Completed        *bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
