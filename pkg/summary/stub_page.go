package summary

import (
	"context"

	"github.com/tintama/tintama/pkg/timesheet"
)

type stubPage struct {
	rows      []timesheet.Row
	rowsErr   error
	renderErr error
	rendered  []timesheet.Summary
}

func newStubPage(rows ...timesheet.Row) *stubPage {
	return &stubPage{rows: rows}
}

func (s *stubPage) Rows(ctx context.Context) ([]timesheet.Row, error) {
	if s.rowsErr != nil {
		return nil, s.rowsErr
	}
	return s.rows, nil
}

func (s *stubPage) RenderSummary(ctx context.Context, summary timesheet.Summary) error {
	if s.renderErr != nil {
		return s.renderErr
	}
	s.rendered = append(s.rendered, summary)
	return nil
}
