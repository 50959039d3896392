package postgre

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// timeLayouts are the textual forms drivers hand back for DATE and TIMESTAMP
// columns when they do not decode them to time.Time themselves.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NullTime scans a nullable DATE or TIMESTAMP from either driver.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Scan implements sql.Scanner.
func (n *NullTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		n.Time, n.Valid = time.Time{}, false
		return nil
	case time.Time:
		n.Time, n.Valid = v, true
		return nil
	case []byte:
		return n.parse(string(v))
	case string:
		return n.parse(v)
	default:
		return fmt.Errorf("postgre.NullTime: unsupported type %T", value)
	}
}

func (n *NullTime) parse(s string) error {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			n.Time, n.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("postgre.NullTime: cannot parse %q", s)
}

// Date returns the value as a midnight UTC calendar date, zero when NULL.
func (n NullTime) Date() time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return time.Date(n.Time.Year(), n.Time.Month(), n.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// DateArg binds a calendar date as YYYY-MM-DD, or NULL for the zero value.
// Binding text keeps date comparisons working under SQLite.
func DateArg(t time.Time) driver.Value {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}

// TimeArg binds a timestamp in UTC, or NULL for the zero value.
func TimeArg(t time.Time) driver.Value {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}

// StringArg binds an optional text value, or NULL when empty.
func StringArg(s string) driver.Value {
	if s == "" {
		return nil
	}
	return s
}

// IntArg binds an optional positive integer, or NULL when not positive.
func IntArg(v int) driver.Value {
	if v <= 0 {
		return nil
	}
	return int64(v)
}

// Placeholders returns "$from, $from+1, ..." for n values.
func Placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}
