package http

import (
	"productivity-planner/internal/habit"
	"productivity-planner/internal/model"
	"productivity-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,max=255"`
	Description string   `json:"description" binding:"max=5000"`
	Frequency   string   `json:"frequency"   binding:"required"`
	TargetDays  []string `json:"target_days" binding:"max=7"`
	GoalTarget  int      `json:"goal_target" binding:"min=0"`
	GoalPeriod  string   `json:"goal_period"`
	Color       string   `json:"color"       binding:"max=32"`
}

func (r createReq) toInput() habit.CreateInput {
	return habit.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Frequency:   model.HabitFrequency(r.Frequency),
		TargetDays:  r.TargetDays,
		GoalTarget:  r.GoalTarget,
		GoalPeriod:  model.GoalPeriod(r.GoalPeriod),
		Color:       r.Color,
	}
}

type listReq struct {
	IncludeLogs bool `form:"include_logs"`
}

func (r listReq) toInput() habit.ListInput {
	return habit.ListInput{IncludeLogs: r.IncludeLogs}
}

type logReq struct {
	HabitID   string `json:"-"`
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

func (r logReq) toInput() habit.LogInput {
	return habit.LogInput{HabitID: r.HabitID, Date: r.Date, Completed: r.Completed}
}

// --- Response DTOs ---

type logResp struct {
	ID         string            `json:"id"`
	HabitID    string            `json:"habit_id"`
	LoggedDate response.Date     `json:"logged_date"`
	Completed  bool              `json:"completed"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newLogResp(l model.HabitLog) logResp {
	return logResp{
		ID:         l.ID,
		HabitID:    l.HabitID,
		LoggedDate: response.Date(l.LoggedDate),
		Completed:  l.Completed,
		CreatedAt:  response.DateTime(l.CreatedAt),
	}
}

type habitResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Frequency   string            `json:"frequency"`
	TargetDays  []string          `json:"target_days"`
	GoalTarget  *int              `json:"goal_target"`
	GoalPeriod  *string           `json:"goal_period"`
	Color       string            `json:"color"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   response.DateTime `json:"created_at"`
	Logs        []logResp         `json:"logs,omitempty"`
}

func newHabitResp(h model.Habit, withLogs bool) habitResp {
	resp := habitResp{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Frequency:   string(h.Frequency),
		TargetDays:  h.TargetDays,
		Color:       h.Color,
		IsActive:    h.IsActive,
		CreatedAt:   response.DateTime(h.CreatedAt),
	}
	if resp.TargetDays == nil {
		resp.TargetDays = []string{}
	}
	if h.GoalTarget > 0 {
		target, period := h.GoalTarget, string(h.GoalPeriod)
		resp.GoalTarget, resp.GoalPeriod = &target, &period
	}
	if withLogs {
		resp.Logs = make([]logResp, len(h.Logs))
		for i, l := range h.Logs {
			resp.Logs[i] = newLogResp(l)
		}
	}
	return resp
}

type habitItemResp struct {
	Habit habitResp `json:"habit"`
}

type listResp struct {
	Habits []habitResp `json:"habits"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(out habit.ListOutput, withLogs bool) listResp {
	items := make([]habitResp, len(out.Habits))
	for i, hb := range out.Habits {
		items[i] = newHabitResp(hb, withLogs)
	}
	return listResp{Habits: items, Count: len(items)}
}

type logItemResp struct {
	Log logResp `json:"log"`
}

type goalProgressResp struct {
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Period  string `json:"period"`
}

type statsResp struct {
	HabitID          string            `json:"habit_id"`
	Habit            string            `json:"habit"`
	Streak           int               `json:"streak"`
	GoalProgress     *goalProgressResp `json:"goal_progress"`
	TotalCompletions int               `json:"total_completions"`
}

func (h *handler) newStatsResp(out habit.StatsOutput) statsResp {
	resp := statsResp{
		HabitID:          out.HabitID,
		Habit:            out.Title,
		Streak:           out.Streak,
		TotalCompletions: out.TotalCompletions,
	}
	if gp := out.GoalProgress; gp != nil {
		resp.GoalProgress = &goalProgressResp{Current: gp.Current, Target: gp.Target, Period: string(gp.Period)}
	}
	return resp
}
