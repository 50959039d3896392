package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productivity-planner/internal/model"
	"productivity-planner/internal/planner"
	"productivity-planner/internal/task"
	"productivity-planner/pkg/gcalendar"
)

// Apply writes accepted suggestions back to the task store, one update at a
// time. Updates that already succeeded stay applied when a later one fails.
func (uc *implUseCase) Apply(ctx context.Context, sc model.Scope, input planner.ApplyInput) (planner.ApplyOutput, error) {
	if len(input.Updates) == 0 {
		return planner.ApplyOutput{}, planner.ErrEmptyUpdates
	}

	out := planner.ApplyOutput{
		Updated:       make([]model.Task, 0, len(input.Updates)),
		Skipped:       []string{},
		CalendarLinks: map[string]string{},
	}

	for _, u := range input.Updates {
		res, err := uc.taskUC.Update(ctx, sc, task.UpdateInput{
			ID:               u.TaskID,
			Priority:         u.Priority,
			EstimatedMinutes: u.EstimatedMinutes,
			DueDate:          u.DueDate,
			StartTime:        u.StartTime,
			EndTime:          u.EndTime,
		})
		if errors.Is(err, task.ErrTaskNotFound) {
			out.Skipped = append(out.Skipped, u.TaskID)
			continue
		}
		if err != nil {
			uc.l.Errorf(ctx, "planner.usecase.Apply Update %s: %v", u.TaskID, err)
			return planner.ApplyOutput{}, err
		}
		out.Updated = append(out.Updated, res.Task)

		if input.SyncCalendar && uc.calendar != nil {
			if link, ok := uc.mirror(ctx, res.Task); ok {
				out.CalendarLinks[res.Task.ID] = link
			}
		}
	}

	return out, nil
}

// mirror creates a calendar event for a fully placed task. Failures are
// logged and reported as !ok.
func (uc *implUseCase) mirror(ctx context.Context, t model.Task) (string, bool) {
	if !t.IsScheduled() || t.EndTime == "" {
		return "", false
	}

	loc := uc.dateMath.Location()
	start, err := atClock(t.DueDate, t.StartTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.mirror %s: %v", t.ID, err)
		return "", false
	}
	end, err := atClock(t.DueDate, t.EndTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.mirror %s: %v", t.ID, err)
		return "", false
	}

	ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		TaskID:      t.ID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.mirror CreateEvent %s: %v", t.ID, err)
		return "", false
	}
	return ev.HtmlLink, true
}

// atClock places an "HH:MM" clock on date d in loc. "24:00" is midnight
// at the end of d.
func atClock(d time.Time, clock string, loc *time.Location) (time.Time, error) {
	if clock == "24:00" {
		return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc), nil
	}
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}
