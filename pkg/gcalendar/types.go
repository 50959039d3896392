package gcalendar

import "time"

// TaskIDProperty is the private extended property that links an event to
// the planner task it was created from.
const TaskIDProperty = "planner_task_id"

// CreateEventRequest describes the event mirrored for one placed task.
// Timezone is an IANA name applied to both ends.
type CreateEventRequest struct {
	CalendarID  string
	TaskID      string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
}

// Event is a calendar entry as the planner sees it. TaskID is set only on
// events the planner created.
type Event struct {
	ID          string
	TaskID      string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// FromPlanner reports whether the event was mirrored from a task.
func (e Event) FromPlanner() bool {
	return e.TaskID != ""
}

// ListEventsRequest bounds a read of one calendar. Zero MaxResults means 250.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
