package usecase

import (
	"time"

	"github.com/google/uuid"

	"productivity-planner/internal/habit"
	"productivity-planner/internal/habit/repository"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/log"
)

type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	dateMath *datemath.Parser
	now      func() time.Time
	newID    func() string
}

// New creates a new habit UseCase implementation.
func New(repo repository.Repository, l log.Logger, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		dateMath: dateMath,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

var _ habit.UseCase = (*implUseCase)(nil)
