package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "productivity-planner/internal/agent/delivery/http"
	"productivity-planner/internal/agent/tools"
	habitHTTP "productivity-planner/internal/habit/delivery/http"
	habitRepo "productivity-planner/internal/habit/repository/postgre"
	habitUC "productivity-planner/internal/habit/usecase"
	"productivity-planner/internal/middleware"
	"productivity-planner/internal/planner"
	plannerHTTP "productivity-planner/internal/planner/delivery/http"
	plannerUC "productivity-planner/internal/planner/usecase"
	"productivity-planner/internal/task"
	taskHTTP "productivity-planner/internal/task/delivery/http"
	taskRepo "productivity-planner/internal/task/repository/postgre"
	taskUC "productivity-planner/internal/task/usecase"
	"productivity-planner/pkg/gcalendar"
)

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, error) {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(repo, srv.l, srv.dateMath)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc, nil
}

// setupPlannerDomain registers /api/v1/planner. Calendar sync on apply is
// only available when a calendar client was configured.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUC task.UseCase) (planner.UseCase, error) {
	var calendar plannerUC.CalendarClient
	if srv.calendar != nil {
		calendar = srv.calendar
	}

	uc := plannerUC.New(srv.l, taskUC, srv.dateMath, calendar, plannerUC.Options{
		WorkStartHour: srv.planner.WorkStartHour,
		WorkEndHour:   srv.planner.WorkEndHour,
		WindowDays:    srv.planner.WindowDays,
		CalendarID:    srv.calID,
	})
	h := plannerHTTP.New(srv.l, uc)
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered (calendar sync: %t)", calendar != nil)
	return uc, nil
}

// setupHabitDomain registers /api/v1/habits.
func (srv HTTPServer) setupHabitDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := habitRepo.New(srv.db, srv.l)
	uc := habitUC.New(repo, srv.l, srv.dateMath)
	h := habitHTTP.New(srv.l, uc)
	habitHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Habit domain registered")
	return nil
}

// setupAgentDomain registers /api/v1/agent/tools.
func (srv HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, planUC planner.UseCase) error {
	var calendar tools.CalendarClient
	if srv.calendar != nil {
		calendar = gcalendar.NewRetryingLister(srv.calendar, 0)
	}

	registry := tools.NewRegistry(planUC, calendar, srv.dateMath, srv.l)
	h := agentHTTP.New(srv.l, registry)
	agentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Agent domain registered with %d tools", len(registry.List()))
	return nil
}
