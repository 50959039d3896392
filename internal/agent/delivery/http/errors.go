package http

import (
	"errors"
	"net/http"

	"productivity-planner/internal/agent"
	"productivity-planner/internal/planner"
	"productivity-planner/internal/task"
	pkgErrors "productivity-planner/pkg/errors"
)

var validationErrors = []error{
	agent.ErrInvalidArguments,
	planner.ErrEmptyTaskIDs,
	planner.ErrInvalidDate,
	planner.ErrInvalidWindow,
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrToolNotFound):
		return pkgErrors.NewNotFoundError(agent.ErrToolNotFound.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewNotFoundError(task.ErrTaskNotFound.Error())
	case errors.Is(err, agent.ErrMissingScope):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
