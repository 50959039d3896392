package model

import "time"

// Priority is the importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for scheduling: lower runs first.
// Unknown values rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Task is a user task. Unset fields keep their zero value:
// an empty StartTime means no slot, a zero DueDate means inbox.
type Task struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Priority         Priority
	EstimatedMinutes int
	DueDate          time.Time // midnight UTC
	StartTime        string    // HH:MM
	EndTime          string    // HH:MM
	Completed        bool
	CompletedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsScheduled reports whether the task already holds a slot.
func (t Task) IsScheduled() bool {
	return !t.DueDate.IsZero() && t.StartTime != ""
}
