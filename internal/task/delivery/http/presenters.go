package http

import (
	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
	"productivity-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title            string `json:"title"             binding:"required,max=255"`
	Description      string `json:"description"       binding:"max=5000"`
	Priority         string `json:"priority"`
	EstimatedMinutes int    `json:"estimated_minutes" binding:"min=0,max=10080"`
	DueDate          string `json:"due_date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:            r.Title,
		Description:      r.Description,
		Priority:         model.Priority(r.Priority),
		EstimatedMinutes: r.EstimatedMinutes,
		DueDate:          r.DueDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
	}
}

// ---

type listReq struct {
	Date      string `form:"date"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Completed *bool  `form:"completed"`
	Priority  string `form:"priority" binding:"omitempty,oneof=low medium high"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Date:      r.Date,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Completed: r.Completed,
		Priority:  model.Priority(r.Priority),
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID               string  `json:"-"` // populated from URI param
	Title            *string `json:"title"             binding:"omitempty,max=255"`
	Description      *string `json:"description"       binding:"omitempty,max=5000"`
	Priority         *string `json:"priority"`
	EstimatedMinutes *int    `json:"estimated_minutes" binding:"omitempty,min=0,max=10080"`
	DueDate          *string `json:"due_date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	Completed        *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		EstimatedMinutes: r.EstimatedMinutes,
		DueDate:          r.DueDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Completed:        r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// --- Response DTOs ---

// TaskResp is the JSON form of a task. Unset optional fields are null.
type TaskResp struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Priority         string             `json:"priority"`
	EstimatedMinutes *int               `json:"estimated_minutes"`
	DueDate          response.Date      `json:"due_date"`
	StartTime        *string            `json:"start_time"`
	EndTime          *string            `json:"end_time"`
	Completed        bool               `json:"completed"`
	CompletedAt      *response.DateTime `json:"completed_at"`
	CreatedAt        response.DateTime  `json:"created_at"`
	UpdatedAt        response.DateTime  `json:"updated_at"`
}

// NewTaskResp presents a task. Other domains reuse it to return tasks.
func NewTaskResp(t model.Task) TaskResp {
	resp := TaskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     response.Date(t.DueDate),
		StartTime:   optString(t.StartTime),
		EndTime:     optString(t.EndTime),
		Completed:   t.Completed,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
	if t.EstimatedMinutes > 0 {
		minutes := t.EstimatedMinutes
		resp.EstimatedMinutes = &minutes
	}
	if !t.CompletedAt.IsZero() {
		at := response.DateTime(t.CompletedAt)
		resp.CompletedAt = &at
	}
	return resp
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type taskItemResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newTaskItemResp(t model.Task) taskItemResp {
	return taskItemResp{Task: NewTaskResp(t)}
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]TaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = NewTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
