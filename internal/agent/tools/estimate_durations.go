package tools

import (
	"context"

	"productivity-planner/internal/agent"
	"productivity-planner/internal/planner"
)

// EstimateDurationsTool suggests durations in minutes for tasks by keyword.
type EstimateDurationsTool struct {
	uc planner.UseCase
}

func NewEstimateDurationsTool(uc planner.UseCase) *EstimateDurationsTool {
	return &EstimateDurationsTool{uc: uc}
}

func (t *EstimateDurationsTool) Name() string {
	return "estimate_durations"
}

func (t *EstimateDurationsTool) Description() string {
	return "Estimate how many minutes each task takes based on its complexity keywords. Long descriptions raise the estimate."
}

func (t *EstimateDurationsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_ids": taskIDsSchema,
		},
		"required": []string{"task_ids"},
	}
}

type DurationEstimate struct {
	TaskID           string `json:"task_id"`
	Title            string `json:"title"`
	CurrentMinutes   int    `json:"current_minutes,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Reason           string `json:"reason"`
}

type EstimateDurationsOutput struct {
	Estimates []DurationEstimate `json:"estimates"`
}

func (t *EstimateDurationsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	var in taskIDsInput
	if err := decodeArgs(params, &in); err != nil {
		return nil, err
	}

	out, err := t.uc.EstimateDurations(ctx, sc, planner.AnalyzeInput{TaskIDs: in.TaskIDs})
	if err != nil {
		return nil, err
	}

	items := make([]DurationEstimate, 0, len(out.Estimates))
	for _, e := range out.Estimates {
		items = append(items, DurationEstimate{
			TaskID:           e.TaskID,
			Title:            e.Title,
			CurrentMinutes:   e.CurrentMinutes,
			EstimatedMinutes: e.EstimatedMinutes,
			Reason:           e.Reason,
		})
	}
	return EstimateDurationsOutput{Estimates: items}, nil
}

var _ agent.Tool = (*EstimateDurationsTool)(nil)
