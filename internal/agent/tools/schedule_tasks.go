package tools

import (
	"context"

	"productivity-planner/internal/agent"
	"productivity-planner/internal/planner"
	"productivity-planner/pkg/datemath"
)

// ScheduleTasksTool proposes time slots for tasks without saving them.
type ScheduleTasksTool struct {
	uc planner.UseCase
}

func NewScheduleTasksTool(uc planner.UseCase) *ScheduleTasksTool {
	return &ScheduleTasksTool{uc: uc}
}

func (t *ScheduleTasksTool) Name() string {
	return "schedule_tasks"
}

func (t *ScheduleTasksTool) Description() string {
	return "Propose a date and whole-hour slot for each task inside working hours, high priority first, avoiding already scheduled tasks. " +
		"Nothing is saved. Tasks that do not fit in the window are left out."
}

func (t *ScheduleTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_ids": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Ids of the tasks to schedule",
			},
			"start_date": map[string]interface{}{
				"type":        "string",
				"description": "First day of the window (YYYY-MM-DD, default today)",
			},
			"end_date": map[string]interface{}{
				"type":        "string",
				"description": "Last day of the window (YYYY-MM-DD, default start_date + 7 days)",
			},
			"work_start_hour": map[string]interface{}{
				"type":        "integer",
				"description": "First working hour of the day (default 9)",
			},
			"work_end_hour": map[string]interface{}{
				"type":        "integer",
				"description": "Hour the working day ends (default 18)",
			},
		},
		"required": []string{"task_ids"},
	}
}

type scheduleTasksInput struct {
	TaskIDs       []string `json:"task_ids"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	WorkStartHour *int     `json:"work_start_hour"`
	WorkEndHour   *int     `json:"work_end_hour"`
}

type ScheduledSlot struct {
	TaskID    string `json:"task_id"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleTasksOutput struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Schedule  []ScheduledSlot `json:"schedule"`
	Count     int             `json:"count"`
}

func (t *ScheduleTasksTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	var in scheduleTasksInput
	if err := decodeArgs(params, &in); err != nil {
		return nil, err
	}

	out, err := t.uc.Schedule(ctx, sc, planner.ScheduleInput{
		TaskIDs:       in.TaskIDs,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		WorkStartHour: in.WorkStartHour,
		WorkEndHour:   in.WorkEndHour,
	})
	if err != nil {
		return nil, err
	}

	slots := make([]ScheduledSlot, 0, len(out.Schedule))
	for _, s := range out.Schedule {
		slots = append(slots, ScheduledSlot{
			TaskID:    s.TaskID,
			Title:     s.Title,
			DueDate:   datemath.Format(s.DueDate),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return ScheduleTasksOutput{
		StartDate: datemath.Format(out.StartDate),
		EndDate:   datemath.Format(out.EndDate),
		Schedule:  slots,
		Count:     len(slots),
	}, nil
}

var _ agent.Tool = (*ScheduleTasksTool)(nil)
