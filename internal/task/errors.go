package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDuration  = errors.New("estimated minutes must be between 0 and 10080")
	ErrInvalidDateRange = errors.New("end date is before start date")
)
