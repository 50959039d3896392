package http

import (
	"errors"
	"net/http"

	"productivity-planner/internal/habit"
	pkgErrors "productivity-planner/pkg/errors"
)

var validationErrors = []error{
	habit.ErrEmptyTitle,
	habit.ErrInvalidFrequency,
	habit.ErrMissingTargetDays,
	habit.ErrInvalidTargetDay,
	habit.ErrInvalidGoal,
	habit.ErrInvalidDate,
}

// mapError translates habit errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	if errors.Is(err, habit.ErrHabitNotFound) {
		return pkgErrors.NewNotFoundError(habit.ErrHabitNotFound.Error())
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
