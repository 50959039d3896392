package scheduler

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"productivity-planner/internal/model"
	"productivity-planner/pkg/datemath"
)

type span struct {
	start, end int
}

func (s span) overlaps(start, end int) bool {
	return start < s.end && end > s.start
}

// Validate checks the window and the working hours after defaults apply.
func (r Request) Validate() error {
	r = r.withDefaults()
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidWindow)
	}
	if datemath.Truncate(r.EndDate).Before(datemath.Truncate(r.StartDate)) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidWindow, datemath.Format(r.EndDate), datemath.Format(r.StartDate))
	}
	if r.WorkStartHour < 0 || r.WorkEndHour > 24 || r.WorkStartHour >= r.WorkEndHour {
		return fmt.Errorf("%w: work hours %d-%d", ErrInvalidWindow, r.WorkStartHour, r.WorkEndHour)
	}
	if datemath.Truncate(r.StartDate).AddDate(0, 0, MaxWindowDays).Before(datemath.Truncate(r.EndDate)) {
		return fmt.Errorf("%w: window longer than %d days", ErrInvalidWindow, MaxWindowDays)
	}
	return nil
}

func (r Request) withDefaults() Request {
	if r.EndDate.IsZero() && !r.StartDate.IsZero() {
		r.EndDate = r.StartDate.AddDate(0, 0, DefaultWindowDays)
	}
	if r.WorkStartHour == 0 && r.WorkEndHour == 0 {
		r.WorkStartHour = DefaultWorkStartHour
		r.WorkEndHour = DefaultWorkEndHour
	}
	return r
}

// Schedule places every task it can, highest priority first, at the earliest
// free whole-hour slot of the window. Tasks that fit nowhere are left out.
// The result is in placement order. Callers should Validate first; an invalid
// request yields no placements.
func Schedule(req Request) []Placement {
	req = req.withDefaults()
	if req.Validate() != nil {
		return nil
	}

	start := datemath.Truncate(req.StartDate)
	end := datemath.Truncate(req.EndDate)

	occupied := make(map[string][]span)
	for _, iv := range req.Occupied {
		key := datemath.Format(iv.Date)
		occupied[key] = append(occupied[key], span{start: iv.StartHour, end: iv.EndHour})
	}

	items := slices.Clone(req.Tasks)
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})

	var placements []Placement
	for _, item := range items {
		hours := DurationHours(item.EstimatedMinutes)
		if hours > req.WorkEndHour-req.WorkStartHour {
			continue
		}

	days:
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			key := datemath.Format(day)
			for h := req.WorkStartHour; h <= req.WorkEndHour-hours; h++ {
				if collides(occupied[key], h, h+hours) {
					continue
				}
				occupied[key] = append(occupied[key], span{start: h, end: h + hours})
				placements = append(placements, Placement{
					TaskID:    item.ID,
					Date:      day,
					StartHour: h,
					EndHour:   h + hours,
				})
				break days
			}
		}
	}

	return placements
}

func collides(spans []span, start, end int) bool {
	for _, s := range spans {
		if s.overlaps(start, end) {
			return true
		}
	}
	return false
}

// DurationHours rounds minutes up to whole hours. Unset or negative
// estimates count as DefaultMinutes.
func DurationHours(minutes int) int {
	if minutes <= 0 {
		minutes = DefaultMinutes
	}
	hours := minutes / 60
	if minutes%60 != 0 {
		hours++
	}
	return hours
}

// OccupiedFromTasks derives taken intervals from tasks that hold a slot.
// The start hour is the hour of StartTime; the end hour is the hour of
// EndTime, or start+1 when EndTime is unset. Completed tasks still count.
func OccupiedFromTasks(tasks []model.Task) []Interval {
	var out []Interval
	for _, t := range tasks {
		if !t.IsScheduled() {
			continue
		}
		startHour, ok := hourOf(t.StartTime)
		if !ok {
			continue
		}
		endHour := startHour + 1
		if t.EndTime != "" {
			if h, ok := hourOf(t.EndTime); ok {
				endHour = h
			}
		}
		out = append(out, Interval{
			Date:      datemath.Truncate(t.DueDate),
			StartHour: startHour,
			EndHour:   endHour,
		})
	}
	return out
}

// hourOf returns the hour component of an HH:MM string.
func hourOf(clock string) (int, bool) {
	hh, _, _ := strings.Cut(strings.TrimSpace(clock), ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	return h, true
}
