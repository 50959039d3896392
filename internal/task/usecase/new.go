package usecase

import (
	"time"

	"productivity-planner/internal/task"
	"productivity-planner/internal/task/repository"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	dateMath *datemath.Parser
	now      func() time.Time
	newID    func() string
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		dateMath: dateMath,
		now:      time.Now,
		newID:    newUUID,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
