package http

import (
	"errors"
	"net/http"

	"productivity-planner/internal/task"
	pkgErrors "productivity-planner/pkg/errors"
)

var validationErrors = []error{
	task.ErrEmptyTitle,
	task.ErrInvalidPriority,
	task.ErrInvalidTime,
	task.ErrInvalidDate,
	task.ErrInvalidDuration,
	task.ErrInvalidDateRange,
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500.
func (h *handler) mapError(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewNotFoundError(task.ErrTaskNotFound.Error())
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
