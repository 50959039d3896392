package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"productivity-planner/internal/model"
	"productivity-planner/internal/planner"
	"productivity-planner/internal/planner/scheduler"
)

// Schedule proposes a date and an on-the-hour slot for each target task.
// It reads a snapshot of the caller's already scheduled tasks and writes nothing.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input planner.ScheduleInput) (planner.ScheduleOutput, error) {
	if len(input.TaskIDs) == 0 {
		return planner.ScheduleOutput{}, planner.ErrEmptyTaskIDs
	}

	req, err := uc.buildRequest(input)
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	tasks, err := uc.taskUC.ListByIDs(ctx, sc, input.TaskIDs)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.Schedule ListByIDs: %v", err)
		return planner.ScheduleOutput{}, err
	}

	occupied, err := uc.taskUC.ListScheduled(ctx, sc, req.StartDate, req.EndDate)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.Schedule ListScheduled: %v", err)
		return planner.ScheduleOutput{}, err
	}

	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		titles[t.ID] = t.Title
		req.Tasks = append(req.Tasks, scheduler.Item{
			ID:               t.ID,
			Priority:         t.Priority,
			EstimatedMinutes: t.EstimatedMinutes,
		})
	}
	req.Occupied = scheduler.OccupiedFromTasks(occupied)

	placements := scheduler.Schedule(req)
	slots := make([]planner.Slot, 0, len(placements))
	for _, p := range placements {
		slots = append(slots, planner.Slot{
			TaskID:    p.TaskID,
			Title:     titles[p.TaskID],
			DueDate:   p.Date,
			StartTime: p.StartTime(),
			EndTime:   p.EndTime(),
		})
	}

	if omitted := len(req.Tasks) - len(slots); omitted > 0 {
		uc.l.Infof(ctx, "planner.usecase.Schedule: %d of %d tasks did not fit between %s and %s",
			omitted, len(req.Tasks), req.StartDate.Format(time.DateOnly), req.EndDate.Format(time.DateOnly))
	}

	return planner.ScheduleOutput{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		WorkStartHour: req.WorkStartHour,
		WorkEndHour:   req.WorkEndHour,
		Schedule:      slots,
	}, nil
}

// buildRequest resolves the window and the working day and validates them.
func (uc *implUseCase) buildRequest(input planner.ScheduleInput) (scheduler.Request, error) {
	now := uc.now()

	start := uc.dateMath.Today(now)
	if v := strings.TrimSpace(input.StartDate); v != "" {
		d, err := uc.dateMath.ParseDate(v, now)
		if err != nil {
			return scheduler.Request{}, fmt.Errorf("%w: start_date %q", planner.ErrInvalidDate, v)
		}
		start = d
	}

	end := start.AddDate(0, 0, uc.opts.WindowDays)
	if v := strings.TrimSpace(input.EndDate); v != "" {
		d, err := uc.dateMath.ParseDate(v, now)
		if err != nil {
			return scheduler.Request{}, fmt.Errorf("%w: end_date %q", planner.ErrInvalidDate, v)
		}
		end = d
	}

	req := scheduler.Request{
		StartDate:     start,
		EndDate:       end,
		WorkStartHour: uc.opts.WorkStartHour,
		WorkEndHour:   uc.opts.WorkEndHour,
	}
	if input.WorkStartHour != nil {
		req.WorkStartHour = *input.WorkStartHour
	}
	if input.WorkEndHour != nil {
		req.WorkEndHour = *input.WorkEndHour
	}

	if err := req.Validate(); err != nil {
		return scheduler.Request{}, err
	}
	return req, nil
}
