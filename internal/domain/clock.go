package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Layouts accepted for a due date. The long form is produced when a start
// time is combined with the date.
const (
	dueDateLayout      = "2006-01-02"
	dueTimestampLayout = "2006-01-02T15:04:05"
)

// ParseClock parses an HH:MM clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time: %s", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in clock time: %s", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in clock time: %s", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time out of range: %s", clock)
	}

	return hour*60 + minute, nil
}

// WrapMinutes returns the span in minutes from start to end, assuming the
// span crosses midnight when end precedes start.
func WrapMinutes(startMinutes, endMinutes int) int {
	return ((endMinutes-startMinutes)%minutesPerDay + minutesPerDay) % minutesPerDay
}

// PadClockComponent left-pads an hour or minute component to two digits.
func PadClockComponent(component string) string {
	if len(component) >= 2 {
		return component
	}
	return strings.Repeat("0", 2-len(component)) + component
}

// ComposeDueTimestamp combines a YYYY-MM-DD date with an HH:MM start time
// into the full due-timestamp form. With no start time the date is returned
// unchanged.
func ComposeDueTimestamp(date, startTime string) string {
	if startTime == "" {
		return date
	}
	return date + "T" + startTime + ":00"
}

// SplitDueTimestamp splits a due-timestamp into its date and HH:MM time
// parts. The time part is empty when the value carries only a date.
func SplitDueTimestamp(due string) (date, clock string) {
	date, rest, found := strings.Cut(due, "T")
	if !found {
		return due, ""
	}
	if len(rest) >= 5 {
		clock = rest[:5]
	}
	return date, clock
}

// ParseDueTimestamp parses a due date in either accepted layout. Unparseable
// values yield the zero time, which sorts first.
func ParseDueTimestamp(due string) time.Time {
	if ts, err := time.Parse(dueTimestampLayout, due); err == nil {
		return ts
	}
	if ts, err := time.Parse(dueDateLayout, due); err == nil {
		return ts
	}
	return time.Time{}
}
