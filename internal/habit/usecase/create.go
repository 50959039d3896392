package usecase

import (
	"context"
	"strings"

	"productivity-planner/internal/habit"
	repo "productivity-planner/internal/habit/repository"
	"productivity-planner/internal/model"
)

// Create validates and stores a new active habit.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input habit.CreateInput) (habit.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return habit.CreateOutput{}, habit.ErrEmptyTitle
	}

	frequency := model.HabitFrequency(strings.ToLower(strings.TrimSpace(string(input.Frequency))))
	if !frequency.IsValid() {
		return habit.CreateOutput{}, habit.ErrInvalidFrequency
	}

	var days []string
	if frequency == model.FrequencyCustom {
		if len(input.TargetDays) == 0 {
			return habit.CreateOutput{}, habit.ErrMissingTargetDays
		}
		var err error
		if days, err = normalizeDays(input.TargetDays); err != nil {
			return habit.CreateOutput{}, err
		}
	}

	goalTarget, goalPeriod, err := normalizeGoal(input.GoalTarget, input.GoalPeriod)
	if err != nil {
		return habit.CreateOutput{}, err
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = habit.DefaultColor
	}

	h, err := uc.repo.CreateHabit(ctx, repo.CreateHabitOptions{
		ID:          uc.newID(),
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Frequency:   frequency,
		TargetDays:  days,
		GoalTarget:  goalTarget,
		GoalPeriod:  goalPeriod,
		Color:       color,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Create CreateHabit: %v", err)
		return habit.CreateOutput{}, err
	}

	return habit.CreateOutput{Habit: h}, nil
}
