package planner

import (
	"context"

	"productivity-planner/internal/model"
)

// UseCase runs the classifier and the scheduler over the caller's tasks.
// None of the read operations mutate tasks; Apply is the only writer.
type UseCase interface {
	AnalyzePriorities(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
	EstimateDurations(ctx context.Context, sc model.Scope, input AnalyzeInput) (EstimateOutput, error)
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
	Apply(ctx context.Context, sc model.Scope, input ApplyInput) (ApplyOutput, error)
}
