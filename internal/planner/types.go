package planner

import (
	"time"

	"productivity-planner/internal/model"
)

// AnalyzeInput selects the tasks to classify.
type AnalyzeInput struct {
	TaskIDs []string
}

// Suggestion is the suggested priority for one task.
type Suggestion struct {
	TaskID            string
	Title             string
	CurrentPriority   model.Priority
	SuggestedPriority model.Priority
	Reason            string
}

type AnalyzeOutput struct {
	Suggestions []Suggestion
}

// Estimate is the suggested duration for one task.
type Estimate struct {
	TaskID           string
	Title            string
	CurrentMinutes   int
	EstimatedMinutes int
	Reason           string
}

type EstimateOutput struct {
	Estimates []Estimate
}

// ScheduleInput is a scheduling request. Dates accept YYYY-MM-DD or the
// relative forms understood by datemath. Nil hours fall back to the
// configured working day.
type ScheduleInput struct {
	TaskIDs       []string
	StartDate     string
	EndDate       string
	WorkStartHour *int
	WorkEndHour   *int
}

// Slot is one proposed placement.
type Slot struct {
	TaskID    string
	Title     string
	DueDate   time.Time
	StartTime string
	EndTime   string
}

// ScheduleOutput carries the resolved window and the placements in
// scheduling order. Tasks that did not fit are absent.
type ScheduleOutput struct {
	StartDate     time.Time
	EndDate       time.Time
	WorkStartHour int
	WorkEndHour   int
	Schedule      []Slot
}

// TaskUpdate is one accepted suggestion or placement. Nil fields are kept.
type TaskUpdate struct {
	TaskID           string
	Priority         *model.Priority
	EstimatedMinutes *int
	DueDate          *string
	StartTime        *string
	EndTime          *string
}

type ApplyInput struct {
	Updates      []TaskUpdate
	SyncCalendar bool
}

// ApplyOutput lists the updated tasks, the ids that did not resolve and,
// when mirrored, the calendar event link per task id.
type ApplyOutput struct {
	Updated       []model.Task
	Skipped       []string
	CalendarLinks map[string]string
}
