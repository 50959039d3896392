package tools

import (
	"context"

	"productivity-planner/internal/agent"
	"productivity-planner/internal/planner"
)

// AnalyzePrioritiesTool suggests priorities for tasks by keyword.
type AnalyzePrioritiesTool struct {
	uc planner.UseCase
}

func NewAnalyzePrioritiesTool(uc planner.UseCase) *AnalyzePrioritiesTool {
	return &AnalyzePrioritiesTool{uc: uc}
}

func (t *AnalyzePrioritiesTool) Name() string {
	return "analyze_priorities"
}

func (t *AnalyzePrioritiesTool) Description() string {
	return "Suggest a priority (high, medium, low) for each task based on keywords in its title and description."
}

func (t *AnalyzePrioritiesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_ids": taskIDsSchema,
		},
		"required": []string{"task_ids"},
	}
}

type taskIDsInput struct {
	TaskIDs []string `json:"task_ids"`
}

type PrioritySuggestion struct {
	TaskID            string `json:"task_id"`
	Title             string `json:"title"`
	CurrentPriority   string `json:"current_priority"`
	SuggestedPriority string `json:"suggested_priority"`
	Reason            string `json:"reason"`
}

type AnalyzePrioritiesOutput struct {
	Suggestions []PrioritySuggestion `json:"suggestions"`
}

func (t *AnalyzePrioritiesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	var in taskIDsInput
	if err := decodeArgs(params, &in); err != nil {
		return nil, err
	}

	out, err := t.uc.AnalyzePriorities(ctx, sc, planner.AnalyzeInput{TaskIDs: in.TaskIDs})
	if err != nil {
		return nil, err
	}

	items := make([]PrioritySuggestion, 0, len(out.Suggestions))
	for _, s := range out.Suggestions {
		items = append(items, PrioritySuggestion{
			TaskID:            s.TaskID,
			Title:             s.Title,
			CurrentPriority:   string(s.CurrentPriority),
			SuggestedPriority: string(s.SuggestedPriority),
			Reason:            s.Reason,
		})
	}
	return AnalyzePrioritiesOutput{Suggestions: items}, nil
}

var _ agent.Tool = (*AnalyzePrioritiesTool)(nil)
