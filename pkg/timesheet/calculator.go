package timesheet

import (
	"fmt"
	"time"
)

// Duration returns the whole minutes between start and end of the period, truncated
// toward zero. An open period ends at now.
func Duration(p Period, now time.Time) int {
	end := now
	if p.End != nil {
		end = *p.End
	}
	return int(end.Sub(p.Start) / time.Minute)
}

// Calculate sums the break periods and subtracts them from the time elapsed since start.
// Work minutes are not clamped and may be negative.
func Calculate(start time.Time, breaks []Period, now time.Time) (Summary, error) {
	openBreaks := 0
	for _, b := range breaks {
		if b.IsOpen() {
			openBreaks++
		}
	}
	if openBreaks > 1 {
		return Summary{}, fmt.Errorf("%w: %d open breaks", ErrAmbiguousBreaks, openBreaks)
	}

	breakMinutes := 0
	for _, b := range breaks {
		breakMinutes += Duration(b, now)
	}
	sinceStart := Duration(Period{Start: start}, now)

	return Summary{
		WorkMinutes:  sinceStart - breakMinutes,
		BreakMinutes: breakMinutes,
	}, nil
}

// FormatMinutes renders minutes as H:MM. Hours use floor division so the minute part
// is always between 0 and 59, -65 renders as -2:55.
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	if minutes%60 != 0 && minutes < 0 {
		hours--
	}
	return fmt.Sprintf("%d:%02d", hours, minutes-hours*60)
}
