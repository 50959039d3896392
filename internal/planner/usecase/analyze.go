package usecase

import (
	"context"

	"productivity-planner/internal/model"
	"productivity-planner/internal/planner"
)

// AnalyzePriorities suggests a priority for each resolvable task id.
func (uc *implUseCase) AnalyzePriorities(ctx context.Context, sc model.Scope, input planner.AnalyzeInput) (planner.AnalyzeOutput, error) {
	tasks, err := uc.targets(ctx, sc, input.TaskIDs)
	if err != nil {
		return planner.AnalyzeOutput{}, err
	}

	suggestions := make([]planner.Suggestion, 0, len(tasks))
	for _, t := range tasks {
		s := uc.classifier.SuggestPriority(t.Title, t.Description)
		suggestions = append(suggestions, planner.Suggestion{
			TaskID:            t.ID,
			Title:             t.Title,
			CurrentPriority:   t.Priority,
			SuggestedPriority: s.Priority,
			Reason:            s.Reason,
		})
	}

	return planner.AnalyzeOutput{Suggestions: suggestions}, nil
}

// EstimateDurations suggests a duration in minutes for each resolvable task id.
func (uc *implUseCase) EstimateDurations(ctx context.Context, sc model.Scope, input planner.AnalyzeInput) (planner.EstimateOutput, error) {
	tasks, err := uc.targets(ctx, sc, input.TaskIDs)
	if err != nil {
		return planner.EstimateOutput{}, err
	}

	estimates := make([]planner.Estimate, 0, len(tasks))
	for _, t := range tasks {
		e := uc.classifier.EstimateDuration(t.Title, t.Description)
		estimates = append(estimates, planner.Estimate{
			TaskID:           t.ID,
			Title:            t.Title,
			CurrentMinutes:   t.EstimatedMinutes,
			EstimatedMinutes: e.Minutes,
			Reason:           e.Reason,
		})
	}

	return planner.EstimateOutput{Estimates: estimates}, nil
}

// targets loads the caller's tasks for ids, in id order. Unknown ids are dropped.
func (uc *implUseCase) targets(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error) {
	if len(ids) == 0 {
		return nil, planner.ErrEmptyTaskIDs
	}

	tasks, err := uc.taskUC.ListByIDs(ctx, sc, ids)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.targets ListByIDs: %v", err)
		return nil, err
	}
	return tasks, nil
}
