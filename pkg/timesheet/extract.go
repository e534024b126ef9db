package timesheet

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const monthDayLayout = "01/02"

// FindTodayRow returns the first row whose day cell contains today's date as MM/DD.
func FindTodayRow(rows []Row, today time.Time) (Row, bool, error) {
	monthDay := today.Format(monthDayLayout)
	for i, row := range rows {
		if row == nil {
			continue
		}
		text, ok, err := row.DayText()
		if err != nil {
			return nil, false, fmt.Errorf("failed to read day cell of row %d: %w", i, err)
		}
		if !ok {
			continue
		}
		if strings.Contains(text, monthDay) {
			log.Tracef("Found row for %s at index %d", monthDay, i)
			return row, true, nil
		}
	}
	return nil, false, nil
}

// StartTime returns the clock-in instant of the row. Start record cells without a
// time are skipped; the first cell holding one wins.
func StartTime(row Row, today time.Time) (time.Time, bool, error) {
	texts, err := row.ReadStartTimeTexts()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read start time cells: %w", err)
	}
	for _, text := range texts {
		times := ParseClockTimes(text, today)
		if len(times) == 0 {
			continue
		}
		return times[0], true, nil
	}
	return time.Time{}, false, nil
}

func Breaks(row Row, today time.Time) ([]Period, error) {
	texts, err := row.ReadBreakTexts()
	if err != nil {
		return nil, fmt.Errorf("failed to read break cells: %w", err)
	}
	starts := ParseClockTimes(texts.Start, today)
	ends := ParseClockTimes(texts.End, today)
	log.Tracef("Parsed %d break starts and %d break ends", len(starts), len(ends))
	return PairBreaks(starts, ends), nil
}

// PairBreaks pairs the i-th start with the i-th end. Starts without a matching end
// become open periods.
func PairBreaks(starts, ends []time.Time) []Period {
	periods := make([]Period, 0, len(starts))
	for i, start := range starts {
		period := Period{Start: start}
		if i < len(ends) {
			end := ends[i]
			period.End = &end
		}
		periods = append(periods, period)
	}
	return periods
}
