package timesheet

import (
	"time"
)

// Period is a continuous span of time. A nil End means the period is still open
// and is measured against the current instant.
type Period struct {
	Start time.Time
	End   *time.Time
}

func (p Period) IsOpen() bool {
	return p.End == nil
}

type Summary struct {
	WorkMinutes  int
	BreakMinutes int
}

// BreakTexts holds the raw text of the rest start and rest end cells of a day row.
// A missing cell is represented by an empty string.
type BreakTexts struct {
	Start string
	End   string
}

// Row is a read-only view of one calendar day of the timesheet table.
type Row interface {
	// DayText returns the text of the day cell, false when the row has none.
	DayText() (string, bool, error)
	// ReadStartTimeTexts returns the texts of the cells tagged as the start clock record,
	// in document order.
	ReadStartTimeTexts() ([]string, error)
	ReadBreakTexts() (BreakTexts, error)
}
