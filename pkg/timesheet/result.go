package timesheet

import (
	"errors"
	"time"
)

var (
	ErrNoRowToday      = errors.New("no timesheet row for today")
	ErrNoStartTime     = errors.New("no clock-in time for today")
	ErrAmbiguousBreaks = errors.New("more than one unfinished break")
)

type Status int

const (
	StatusOK Status = iota
	StatusNoRowToday
	StatusNoStartTime
	StatusAmbiguousBreaks
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoRowToday:
		return "no_row_today"
	case StatusNoStartTime:
		return "no_start_time"
	case StatusAmbiguousBreaks:
		return "ambiguous_breaks"
	default:
		return "unknown"
	}
}

// Result is the outcome of evaluating one timesheet page. Summary, StartTime and
// Breaks are only meaningful when Status is StatusOK, except Breaks which is also
// filled for StatusAmbiguousBreaks. EvaluatedAt is the instant open periods were
// measured against.
type Result struct {
	Status      Status
	Summary     Summary
	StartTime   time.Time
	Breaks      []Period
	EvaluatedAt time.Time
}

// Message is the human readable reason a widget was not rendered, empty for StatusOK.
func (r Result) Message() string {
	switch r.Status {
	case StatusNoRowToday:
		return "could not find today's attendance row"
	case StatusNoStartTime:
		return "could not find today's clock-in time"
	case StatusAmbiguousBreaks:
		return "there is more than one unfinished break"
	default:
		return ""
	}
}

func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Err returns the sentinel error matching the status, nil for StatusOK.
func (r Result) Err() error {
	switch r.Status {
	case StatusNoRowToday:
		return ErrNoRowToday
	case StatusNoStartTime:
		return ErrNoStartTime
	case StatusAmbiguousBreaks:
		return ErrAmbiguousBreaks
	default:
		return nil
	}
}

// Evaluate runs the locator, the extractors and the calculator against the rows of a
// page. The returned error is reserved for failures reading the rows; missing or
// inconsistent data is reported through the Result status.
func Evaluate(rows []Row, now time.Time) (Result, error) {
	today, ok, err := FindTodayRow(rows, now)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Status: StatusNoRowToday, EvaluatedAt: now}, nil
	}

	start, ok, err := StartTime(today, now)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Status: StatusNoStartTime, EvaluatedAt: now}, nil
	}

	breaks, err := Breaks(today, now)
	if err != nil {
		return Result{}, err
	}

	summary, err := Calculate(start, breaks, now)
	if err != nil {
		if errors.Is(err, ErrAmbiguousBreaks) {
			return Result{
				Status:      StatusAmbiguousBreaks,
				StartTime:   start,
				Breaks:      breaks,
				EvaluatedAt: now,
			}, nil
		}
		return Result{}, err
	}

	return Result{
		Status:      StatusOK,
		Summary:     summary,
		StartTime:   start,
		Breaks:      breaks,
		EvaluatedAt: now,
	}, nil
}
