package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"productivity-planner/internal/model"
	"productivity-planner/internal/task"
)

const (
	clockLayout = "15:04"
	// endOfDay closes a slot that runs until midnight.
	endOfDay = "24:00"
)

func newUUID() string {
	return uuid.NewString()
}

// normalizeEndClock is normalizeClock that also accepts "24:00".
func normalizeEndClock(value string) (string, error) {
	if strings.TrimSpace(value) == endOfDay {
		return endOfDay, nil
	}
	return normalizeClock(value)
}

// normalizeClock validates an HH:MM value and returns it zero padded.
// Empty input stays empty.
func normalizeClock(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", task.ErrInvalidTime, value)
	}
	return t.Format(clockLayout), nil
}

// normalizePriority defaults an empty priority to medium.
func normalizePriority(p model.Priority) (model.Priority, error) {
	if p == "" {
		return model.PriorityMedium, nil
	}
	p = model.Priority(strings.ToLower(string(p)))
	if !p.IsValid() {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}

// parseDueDate resolves a due date expression. Empty input means no date.
func (uc *implUseCase) parseDueDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	d, err := uc.dateMath.ParseDate(value, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", task.ErrInvalidDate, value)
	}
	return d, nil
}

// orderByIDs returns tasks in the order of ids, dropping duplicates and ids
// that did not resolve.
func orderByIDs(tasks []model.Task, ids []string) []model.Task {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	out := make([]model.Task, 0, len(tasks))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, t)
	}
	return out
}

// uniqueIDs trims and de-duplicates ids, keeping first occurrence order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
