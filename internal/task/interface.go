package task

import (
	"context"
	"time"

	"productivity-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Complete(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Planner snapshot queries
	ListByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Task, error)
	ListScheduled(ctx context.Context, sc model.Scope, start, end time.Time) ([]model.Task, error)
}
