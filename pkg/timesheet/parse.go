package timesheet

import (
	"regexp"
	"strconv"
	"time"
)

var clockTimePattern = regexp.MustCompile(`([0-9]{2}):([0-9]{2})`)

// ParseClockTimes returns every HH:MM found in text, left to right, as instants on the
// given day with zero seconds. Text without any match yields an empty slice.
func ParseClockTimes(text string, day time.Time) []time.Time {
	matches := clockTimePattern.FindAllStringSubmatch(text, -1)
	times := make([]time.Time, 0, len(matches))
	for _, m := range matches {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		times = append(times, atClock(day, hour, minute))
	}
	return times
}

// atClock normalizes out of range values the way date arithmetic does, 25:10 is 01:10
// of the following day.
func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
