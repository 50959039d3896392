package http

import (
	"productivity-planner/internal/model"
	"productivity-planner/internal/planner"
	taskHTTP "productivity-planner/internal/task/delivery/http"
	"productivity-planner/pkg/response"
)

// --- Request DTOs ---

type taskIDsReq struct {
	TaskIDs []string `json:"task_ids" binding:"required,min=1,max=100"`
}

func (r taskIDsReq) toInput() planner.AnalyzeInput {
	return planner.AnalyzeInput{TaskIDs: r.TaskIDs}
}

type scheduleReq struct {
	TaskIDs       []string `json:"task_ids"        binding:"required,min=1,max=100"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	WorkStartHour *int     `json:"work_start_hour" binding:"omitempty,min=0,max=24"`
	WorkEndHour   *int     `json:"work_end_hour"   binding:"omitempty,min=0,max=24"`
}

func (r scheduleReq) toInput() planner.ScheduleInput {
	return planner.ScheduleInput{
		TaskIDs:       r.TaskIDs,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		WorkStartHour: r.WorkStartHour,
		WorkEndHour:   r.WorkEndHour,
	}
}

type taskUpdateReq struct {
	TaskID           string  `json:"task_id"           binding:"required"`
	Priority         *string `json:"priority"`
	EstimatedMinutes *int    `json:"estimated_minutes" binding:"omitempty,min=0,max=10080"`
	DueDate          *string `json:"due_date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
}

type applyReq struct {
	Updates      []taskUpdateReq `json:"updates"       binding:"required,min=1,max=100,dive"`
	SyncCalendar bool            `json:"sync_calendar"`
}

func (r applyReq) toInput() planner.ApplyInput {
	updates := make([]planner.TaskUpdate, len(r.Updates))
	for i, u := range r.Updates {
		updates[i] = planner.TaskUpdate{
			TaskID:           u.TaskID,
			EstimatedMinutes: u.EstimatedMinutes,
			DueDate:          u.DueDate,
			StartTime:        u.StartTime,
			EndTime:          u.EndTime,
		}
		if u.Priority != nil {
			p := model.Priority(*u.Priority)
			updates[i].Priority = &p
		}
	}
	return planner.ApplyInput{Updates: updates, SyncCalendar: r.SyncCalendar}
}

// --- Response DTOs ---

type suggestionResp struct {
	TaskID            string `json:"task_id"`
	Title             string `json:"title"`
	CurrentPriority   string `json:"current_priority"`
	SuggestedPriority string `json:"suggested_priority"`
	Reason            string `json:"reason"`
}

type analyzeResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newAnalyzeResp(out planner.AnalyzeOutput) analyzeResp {
	items := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		items[i] = suggestionResp{
			TaskID:            s.TaskID,
			Title:             s.Title,
			CurrentPriority:   string(s.CurrentPriority),
			SuggestedPriority: string(s.SuggestedPriority),
			Reason:            s.Reason,
		}
	}
	return analyzeResp{Suggestions: items}
}

type estimateResp struct {
	TaskID           string `json:"task_id"`
	Title            string `json:"title"`
	CurrentMinutes   *int   `json:"current_minutes"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Reason           string `json:"reason"`
}

type estimatesResp struct {
	Estimates []estimateResp `json:"estimates"`
}

func (h *handler) newEstimatesResp(out planner.EstimateOutput) estimatesResp {
	items := make([]estimateResp, len(out.Estimates))
	for i, e := range out.Estimates {
		items[i] = estimateResp{
			TaskID:           e.TaskID,
			Title:            e.Title,
			EstimatedMinutes: e.EstimatedMinutes,
			Reason:           e.Reason,
		}
		if e.CurrentMinutes > 0 {
			current := e.CurrentMinutes
			items[i].CurrentMinutes = &current
		}
	}
	return estimatesResp{Estimates: items}
}

type slotResp struct {
	TaskID    string        `json:"task_id"`
	Title     string        `json:"title"`
	DueDate   response.Date `json:"due_date"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
}

type scheduleResp struct {
	StartDate     response.Date `json:"start_date"`
	EndDate       response.Date `json:"end_date"`
	WorkStartHour int           `json:"work_start_hour"`
	WorkEndHour   int           `json:"work_end_hour"`
	Schedule      []slotResp    `json:"schedule"`
}

func (h *handler) newScheduleResp(out planner.ScheduleOutput) scheduleResp {
	slots := make([]slotResp, len(out.Schedule))
	for i, s := range out.Schedule {
		slots[i] = slotResp{
			TaskID:    s.TaskID,
			Title:     s.Title,
			DueDate:   response.Date(s.DueDate),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}
	return scheduleResp{
		StartDate:     response.Date(out.StartDate),
		EndDate:       response.Date(out.EndDate),
		WorkStartHour: out.WorkStartHour,
		WorkEndHour:   out.WorkEndHour,
		Schedule:      slots,
	}
}

type applyResp struct {
	Updated       []taskHTTP.TaskResp `json:"updated"`
	Skipped       []string            `json:"skipped"`
	CalendarLinks map[string]string   `json:"calendar_links"`
}

func (h *handler) newApplyResp(out planner.ApplyOutput) applyResp {
	updated := make([]taskHTTP.TaskResp, len(out.Updated))
	for i, t := range out.Updated {
		updated[i] = taskHTTP.NewTaskResp(t)
	}
	return applyResp{
		Updated:       updated,
		Skipped:       out.Skipped,
		CalendarLinks: out.CalendarLinks,
	}
}
