package usecase

import (
	"context"
	"time"

	"productivity-planner/internal/planner"
	"productivity-planner/internal/planner/classifier"
	"productivity-planner/internal/planner/scheduler"
	"productivity-planner/internal/task"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/gcalendar"
	"productivity-planner/pkg/log"
)

// CalendarClient mirrors applied placements as calendar events.
// *gcalendar.Client satisfies it.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Options holds the configured working day and scheduling horizon.
type Options struct {
	WorkStartHour int
	WorkEndHour   int
	WindowDays    int
	CalendarID    string
}

func (o Options) withDefaults() Options {
	if o.WorkStartHour == 0 && o.WorkEndHour == 0 {
		o.WorkStartHour = scheduler.DefaultWorkStartHour
		o.WorkEndHour = scheduler.DefaultWorkEndHour
	}
	if o.WindowDays <= 0 {
		o.WindowDays = scheduler.DefaultWindowDays
	}
	return o
}

type implUseCase struct {
	l          log.Logger
	taskUC     task.UseCase
	classifier classifier.Classifier
	dateMath   *datemath.Parser
	calendar   CalendarClient
	opts       Options
	now        func() time.Time
}

// New creates a new planner UseCase. calendar may be nil, in which case
// Apply never mirrors events.
func New(l log.Logger, taskUC task.UseCase, dateMath *datemath.Parser, calendar CalendarClient, opts Options) *implUseCase {
	return &implUseCase{
		l:          l,
		taskUC:     taskUC,
		classifier: classifier.Default(),
		dateMath:   dateMath,
		calendar:   calendar,
		opts:       opts.withDefaults(),
		now:        time.Now,
	}
}

var _ planner.UseCase = (*implUseCase)(nil)
