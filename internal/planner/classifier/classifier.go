package classifier

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"productivity-planner/internal/model"
)

// PrioritySuggestion is the outcome of SuggestPriority.
type PrioritySuggestion struct {
	Priority model.Priority
	Reason   string
	Keyword  string // empty when no rule matched
}

// DurationEstimate is the outcome of EstimateDuration.
type DurationEstimate struct {
	Minutes  int
	Reason   string
	Keyword  string // empty when no rule matched
	Adjusted bool
}

// Classifier evaluates keyword tables against task text.
// The zero value is not usable; use New or Default.
type Classifier struct {
	priority []PriorityRule
	duration []DurationRule
}

// New builds a Classifier over the given tables, evaluated in order.
func New(priority []PriorityRule, duration []DurationRule) Classifier {
	return Classifier{priority: priority, duration: duration}
}

// Default returns a Classifier over PriorityRules and DurationRules.
func Default() Classifier {
	return New(PriorityRules(), DurationRules())
}

// SuggestPriority classifies a task with the default tables.
func SuggestPriority(title, description string) PrioritySuggestion {
	return Default().SuggestPriority(title, description)
}

// EstimateDuration estimates a task with the default tables.
func EstimateDuration(title, description string) DurationEstimate {
	return Default().EstimateDuration(title, description)
}

// SuggestPriority returns the priority of the first rule with a matching keyword.
func (c Classifier) SuggestPriority(title, description string) PrioritySuggestion {
	text := haystack(title, description)
	for _, rule := range c.priority {
		if kw, ok := firstMatch(text, rule.Keywords); ok {
			return PrioritySuggestion{
				Priority: rule.Priority,
				Reason:   fmt.Sprintf(rule.Reason, kw),
				Keyword:  kw,
			}
		}
	}
	return PrioritySuggestion{Priority: DefaultPriority, Reason: DefaultPriorityReason}
}

// EstimateDuration returns the minutes of the first matching bucket, or
// DefaultMinutes. Long descriptions scale any estimate by DetailedFactor.
func (c Classifier) EstimateDuration(title, description string) DurationEstimate {
	text := haystack(title, description)

	est := DurationEstimate{Minutes: DefaultMinutes, Reason: DefaultMinutesReason}
	for _, rule := range c.duration {
		if kw, ok := firstMatch(text, rule.Keywords); ok {
			est = DurationEstimate{
				Minutes: rule.Minutes,
				Reason:  fmt.Sprintf(rule.Reason, kw),
				Keyword: kw,
			}
			break
		}
	}

	if utf8.RuneCountInString(description) > DetailedDescriptionRunes {
		est.Minutes = int(math.Round(float64(est.Minutes) * DetailedFactor))
		est.Reason += DetailedSuffix
		est.Adjusted = true
	}

	return est
}

func haystack(title, description string) string {
	return strings.ToLower(title + " " + description)
}

func firstMatch(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
