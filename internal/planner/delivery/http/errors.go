package http

import (
	"errors"
	"net/http"

	"productivity-planner/internal/planner"
	"productivity-planner/internal/task"
	pkgErrors "productivity-planner/pkg/errors"
)

var validationErrors = []error{
	planner.ErrEmptyTaskIDs,
	planner.ErrEmptyUpdates,
	planner.ErrInvalidDate,
	planner.ErrInvalidWindow,
	task.ErrEmptyTitle,
	task.ErrInvalidPriority,
	task.ErrInvalidTime,
	task.ErrInvalidDate,
	task.ErrInvalidDuration,
}

// mapError translates planner and task errors into HTTP errors.
func (h *handler) mapError(err error) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewNotFoundError(task.ErrTaskNotFound.Error())
	}
	return pkgErrors.ErrInternalServerError
}
