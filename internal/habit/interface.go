package habit

import (
	"context"

	"productivity-planner/internal/model"
)

// UseCase manages the caller's habits and their daily logs.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Log(ctx context.Context, sc model.Scope, input LogInput) (LogOutput, error)
	Stats(ctx context.Context, sc model.Scope, id string) (StatsOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
