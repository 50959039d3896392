package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"productivity-planner/internal/agent"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/gcalendar"
	pkgLog "productivity-planner/pkg/log"
)

// CalendarClient is the read side of the Google Calendar client.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// CheckCalendarTool lists calendar events in a date window so a proposed
// schedule can be checked against external commitments.
type CheckCalendarTool struct {
	calendar CalendarClient
	dateMath *datemath.Parser
	l        pkgLog.Logger
	now      func() time.Time
}

func NewCheckCalendarTool(calendar CalendarClient, dateMath *datemath.Parser, l pkgLog.Logger) *CheckCalendarTool {
	return &CheckCalendarTool{
		calendar: calendar,
		dateMath: dateMath,
		l:        l,
		now:      time.Now,
	}
}

func (t *CheckCalendarTool) Name() string {
	return "check_calendar"
}

func (t *CheckCalendarTool) Description() string {
	return "Check Google Calendar for events in a date range. Useful for detecting conflicts with a proposed schedule."
}

func (t *CheckCalendarTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"start_date": map[string]interface{}{
				"type":        "string",
				"description": "Start date (YYYY-MM-DD, today, tomorrow, next monday)",
			},
			"end_date": map[string]interface{}{
				"type":        "string",
				"description": "End date, inclusive (default start_date)",
			},
			"time_zone": map[string]interface{}{
				"type":        "string",
				"description": "IANA time zone used for day bounds",
				"default":     t.dateMath.Location().String(),
			},
		},
		"required": []string{"start_date"},
	}
}

type checkCalendarInput struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TimeZone  string `json:"time_zone"`
}

type CheckCalendarOutput struct {
	Events      []CalendarEvent `json:"events"`
	EventCount  int             `json:"event_count"`
	HasConflict bool            `json:"has_conflict"`
	Summary     string          `json:"summary"`
}

type CalendarEvent struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	TaskID    string    `json:"task_id,omitempty"`
}

func (t *CheckCalendarTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in checkCalendarInput
	if err := decodeArgs(params, &in); err != nil {
		return nil, err
	}

	now := t.now()
	start, err := t.dateMath.ParseDate(in.StartDate, now)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", agent.ErrInvalidArguments, err)
	}
	end := start
	if strings.TrimSpace(in.EndDate) != "" {
		end, err = t.dateMath.ParseDate(in.EndDate, now)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date: %v", agent.ErrInvalidArguments, err)
		}
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date before start_date", agent.ErrInvalidArguments)
	}

	loc := t.dateMath.Location()
	if in.TimeZone != "" {
		loc, err = time.LoadLocation(in.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("%w: time_zone: %v", agent.ErrInvalidArguments, err)
		}
	}

	t.l.Infof(ctx, "agent.tools.check_calendar: %s to %s (%s)", datemath.Format(start), datemath.Format(end), loc)

	timeMin := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	timeMax := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc)

	events, err := t.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: timeMin,
		TimeMax: timeMax,
	})
	if err != nil {
		t.l.Errorf(ctx, "agent.tools.check_calendar.ListEvents: %v", err)
		return CheckCalendarOutput{
			Events:  []CalendarEvent{},
			Summary: fmt.Sprintf("Calendar unavailable: %v", err),
		}, nil
	}

	items := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		items = append(items, CalendarEvent{
			Title:     e.Summary,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Location:  e.Location,
			TaskID:    e.TaskID,
		})
	}

	return CheckCalendarOutput{
		Events:      items,
		EventCount:  len(items),
		HasConflict: len(items) > 0,
		Summary:     summarize(items, datemath.Format(start), datemath.Format(end), loc),
	}, nil
}

func summarize(events []CalendarEvent, start, end string, loc *time.Location) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events from %s to %s", start, end)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d event(s) from %s to %s:\n", len(events), start, end)
	for i, e := range events {
		fmt.Fprintf(&b, "%d. %s (%s - %s)",
			i+1,
			e.Title,
			e.StartTime.In(loc).Format("01/02 15:04"),
			e.EndTime.In(loc).Format("15:04"))
		if e.TaskID != "" {
			fmt.Fprintf(&b, " [task %s]", e.TaskID)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var _ agent.Tool = (*CheckCalendarTool)(nil)
