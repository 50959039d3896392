package datemath

import (
	"errors"
	"time"
)

// Layout is the wire format of a calendar date.
const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Range is an inclusive span of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, bounds included.
func (r Range) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}
