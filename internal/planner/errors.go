package planner

import (
	"errors"

	"productivity-planner/internal/planner/scheduler"
)

var (
	ErrEmptyTaskIDs  = errors.New("task_ids must not be empty")
	ErrEmptyUpdates  = errors.New("updates must not be empty")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidWindow = scheduler.ErrInvalidWindow
)
