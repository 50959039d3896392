package habit

import "errors"

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidFrequency  = errors.New("frequency must be daily, weekdays or custom")
	ErrMissingTargetDays = errors.New("custom frequency requires target_days")
	ErrInvalidTargetDay  = errors.New("invalid target day")
	ErrInvalidGoal       = errors.New("invalid goal")
	ErrInvalidDate       = errors.New("invalid date")
)
