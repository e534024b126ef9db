package page

import (
	"context"

	"github.com/tintama/tintama/pkg/timesheet"
)

const (
	DefaultTableSelector = "div.htBlock-adjastableTableF > div > table > tbody"

	daySelector            = "td.htBlock-scrollTable_day > p"
	startEndRecordSelector = "td.start_end_timerecord"
	restRecordSelector     = "td.rest_timerecord"

	recordTagAttribute = "data-ht-sort-index"
	startRecordTag     = "START_TIMERECORD"
	restStartRecordTag = "REST_START_TIMERECORD"
	restEndRecordTag   = "REST_END_TIMERECORD"
)

// Page gives access to the timesheet table of an attendance page and lets the
// summary widget be inserted into it.
type Page interface {
	// Rows returns the body rows of the timesheet table in document order. A page
	// without the table has no rows.
	Rows(ctx context.Context) ([]timesheet.Row, error)
	// RenderSummary inserts a summary widget as the first child of the page body.
	RenderSummary(ctx context.Context, summary timesheet.Summary) error
}

type Options struct {
	TableSelector string
	Labels        Labels
}

func (o Options) withDefaults() Options {
	if o.TableSelector == "" {
		o.TableSelector = DefaultTableSelector
	}
	o.Labels = o.Labels.withDefaults()
	return o
}
