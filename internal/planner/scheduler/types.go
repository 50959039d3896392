package scheduler

import (
	"fmt"
	"time"

	"productivity-planner/internal/model"
)

const (
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 18
	DefaultWindowDays    = 7
	// MaxWindowDays bounds EndDate - StartDate.
	MaxWindowDays = 366
	// DefaultMinutes is the duration assumed for tasks without an estimate.
	DefaultMinutes = 60
)

// Item is a task to place.
type Item struct {
	ID               string
	Priority         model.Priority
	EstimatedMinutes int
}

// Interval is a taken [StartHour, EndHour) range on one date.
type Interval struct {
	Date      time.Time
	StartHour int
	EndHour   int
}

// Request describes one scheduling run. StartDate and EndDate are inclusive.
// A zero EndDate means StartDate plus DefaultWindowDays; zero work hours on
// both ends mean DefaultWorkStartHour to DefaultWorkEndHour.
type Request struct {
	Tasks         []Item
	Occupied      []Interval
	StartDate     time.Time
	EndDate       time.Time
	WorkStartHour int
	WorkEndHour   int
}

// Placement is the slot assigned to one task.
type Placement struct {
	TaskID    string
	Date      time.Time
	StartHour int
	EndHour   int
}

// StartTime formats the start as HH:00.
func (p Placement) StartTime() string {
	return formatHour(p.StartHour)
}

// EndTime formats the end as HH:00.
func (p Placement) EndTime() string {
	return formatHour(p.EndHour)
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
