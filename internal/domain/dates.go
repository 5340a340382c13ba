package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}

// ParseDueDate parses a due date expressed either as a relative phrase
// (today, tomorrow, next friday) or in any layout dateparse understands.
// The result is truncated to the date in UTC.
func ParseDueDate(text string, ref time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, NewValidationErr("due_date cannot be empty")
	}

	if t, ok := resolveRelative(strings.ToLower(trimmed), ref.UTC()); ok {
		return t, nil
	}

	t, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil {
		return time.Time{}, NewValidationErr("due_date '" + text + "' is not a recognizable date")
	}
	return dateOnly(t), nil
}

func resolveRelative(token string, ref time.Time) (time.Time, bool) {
	ref = dateOnly(ref)

	switch token {
	case "today":
		return ref, true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	}

	if after, ok := strings.CutPrefix(token, "next "); ok {
		if after == "week" {
			return ref.AddDate(0, 0, 7), true
		}
		wd, ok := parseWeekday(after)
		if !ok {
			return time.Time{}, false
		}
		return nextWeekday(ref, wd), true
	}

	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), s) {
			return wd, true
		}
	}
	return 0, false
}

func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
