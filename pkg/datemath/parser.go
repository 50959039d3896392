package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves date expressions against "now" in a fixed timezone.
//
// Calendar dates are returned as midnight UTC values so that day
// arithmetic never crosses a DST boundary.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	t := now.In(p.location)
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts YYYY-MM-DD or a relative expression
// (today, tomorrow, yesterday, in N days|weeks|months, next <weekday>).
func (p *Parser) ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	if d, err := time.Parse(Layout, value); err == nil {
		return d, nil
	}

	today := p.Today(now)
	switch value {
	case "today", "hoje":
		return today, nil
	case "tomorrow", "amanha":
		return today.AddDate(0, 0, 1), nil
	case "yesterday", "ontem":
		return today.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(value, "in ") {
		return parseInDuration(value, today)
	}
	if strings.HasPrefix(value, "next ") {
		return parseNextWeekday(value, today)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseRange resolves named ranges: this_week, next_week, this_month,
// next_7_days. Weeks start on Sunday. ok is false for anything else.
func (p *Parser) ParseRange(value string, now time.Time) (Range, bool) {
	today := p.Today(now)

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "this_week", "esta_semana":
		start := StartOfWeek(today)
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, true
	case "next_week", "proxima_semana", "semana_que_vem":
		start := StartOfWeek(today).AddDate(0, 0, 7)
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, true
	case "this_month", "este_mes":
		start := StartOfMonth(today)
		return Range{Start: start, End: start.AddDate(0, 1, -1)}, true
	case "next_7_days", "proximos_7_dias":
		return Range{Start: today, End: today.AddDate(0, 0, 7)}, true
	}
	return Range{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func parseInDuration(value string, today time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(value)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrInvalidDate, value)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	default:
		return today.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func parseNextWeekday(value string, today time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(value, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, dayName)
	}

	daysUntil := int(targetWeekday - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil), nil
}

// Date builds a calendar date value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t, keeping its calendar date as seen in t's location.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// StartOfWeek returns the Sunday on or before d.
func StartOfWeek(d time.Time) time.Time {
	return Truncate(d).AddDate(0, 0, -int(d.Weekday()))
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), 1)
}

// StartOfYear returns January 1st of d's year.
func StartOfYear(d time.Time) time.Time {
	return Date(d.Year(), time.January, 1)
}

// Format renders a calendar date as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(Layout)
}
