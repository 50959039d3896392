package tools

import (
	"productivity-planner/internal/agent"
	"productivity-planner/internal/planner"
	"productivity-planner/pkg/datemath"
	pkgLog "productivity-planner/pkg/log"
)

// NewRegistry registers the planning tools. check_calendar is only
// available when a calendar client is configured.
func NewRegistry(planUC planner.UseCase, calendar CalendarClient, dateMath *datemath.Parser, l pkgLog.Logger) *agent.ToolRegistry {
	r := agent.NewToolRegistry()
	r.Register(NewAnalyzePrioritiesTool(planUC))
	r.Register(NewEstimateDurationsTool(planUC))
	r.Register(NewScheduleTasksTool(planUC))
	if calendar != nil {
		r.Register(NewCheckCalendarTool(calendar, dateMath, l))
	}
	return r
}
