package timesheet

// StubRow is an in-memory Row used by tests of packages building on timesheet.
type StubRow struct {
	Day            *string
	StartTimeTexts []string
	Rest           BreakTexts
	Err            error
	DayErr         error
}

func NewStubRow(day string) *StubRow {
	return &StubRow{Day: &day}
}

func (s *StubRow) WithStartTimes(texts ...string) *StubRow {
	s.StartTimeTexts = texts
	return s
}

func (s *StubRow) WithBreaks(start, end string) *StubRow {
	s.Rest = BreakTexts{Start: start, End: end}
	return s
}

func (s *StubRow) DayText() (string, bool, error) {
	if s.DayErr != nil {
		return "", false, s.DayErr
	}
	if s.Day == nil {
		return "", false, nil
	}
	return *s.Day, true, nil
}

func (s *StubRow) ReadStartTimeTexts() ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.StartTimeTexts, nil
}

func (s *StubRow) ReadBreakTexts() (BreakTexts, error) {
	if s.Err != nil {
		return BreakTexts{}, s.Err
	}
	return s.Rest, nil
}
