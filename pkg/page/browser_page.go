package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"
	"github.com/tintama/tintama/pkg/timesheet"
)

// renderWidgetScript builds the same markup as HTMLPage.widget inside the live page.
const renderWidgetScript = `(widget) => {
	const container = document.createElement('div');
	container.className = widget.class;
	for (const line of widget.lines) {
		const div = document.createElement('div');
		div.className = line.class;
		div.textContent = line.text;
		container.appendChild(div);
	}
	document.body.insertBefore(container, document.body.firstChild);
}`

// BrowserPage reads the timesheet from a page open in a browser session and inserts
// the widget into the live DOM.
type BrowserPage struct {
	session *BrowserSession
	opts    Options
}

func NewBrowserPage(session *BrowserSession, opts Options) *BrowserPage {
	return &BrowserPage{session: session, opts: opts.withDefaults()}
}

func (p *BrowserPage) Rows(ctx context.Context) ([]timesheet.Row, error) {
	table, err := p.findTable()
	if err != nil {
		return nil, err
	}
	if table == nil {
		log.Debugf("Timesheet table %q not found", p.opts.TableSelector)
		return nil, nil
	}

	elements, err := table.QuerySelectorAll(":scope > *")
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet rows: %w", err)
	}
	rows := make([]timesheet.Row, 0, len(elements))
	for _, element := range elements {
		rows = append(rows, browserRow{element: element})
	}
	return rows, nil
}

// findTable returns the table body, nil when the page has none. A table already in the
// DOM is returned without waiting; otherwise the page gets tableWait to render it.
func (p *BrowserPage) findTable() (playwright.ElementHandle, error) {
	table, err := p.session.Page.QuerySelector(p.opts.TableSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet table: %w", err)
	}
	if table != nil {
		return table, nil
	}

	table, err = p.session.Page.WaitForSelector(p.opts.TableSelector, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(p.session.tableWait),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to wait for timesheet table: %w", err)
	}
	return table, nil
}

func (p *BrowserPage) RenderSummary(ctx context.Context, summary timesheet.Summary) error {
	lines := make([]any, 0, 2)
	for _, line := range widgetLines(p.opts.Labels, summary) {
		lines = append(lines, map[string]any{"class": line.Class, "text": line.Text})
	}
	_, err := p.session.Page.Evaluate(renderWidgetScript, map[string]any{
		"class": widgetClass,
		"lines": lines,
	})
	if err != nil {
		return fmt.Errorf("failed to insert summary widget: %w", err)
	}
	return nil
}

type browserRow struct {
	element playwright.ElementHandle
}

func (r browserRow) DayText() (string, bool, error) {
	day, err := r.element.QuerySelector(daySelector)
	if err != nil {
		return "", false, err
	}
	if day == nil {
		return "", false, nil
	}
	text, err := day.TextContent()
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (r browserRow) ReadStartTimeTexts() ([]string, error) {
	cells, err := r.element.QuerySelectorAll(startEndRecordSelector)
	if err != nil {
		return nil, err
	}
	var texts []string
	for _, cell := range cells {
		tag, err := cell.GetAttribute(recordTagAttribute)
		if err != nil {
			return nil, err
		}
		if tag != startRecordTag {
			continue
		}
		text, err := cell.TextContent()
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func (r browserRow) ReadBreakTexts() (timesheet.BreakTexts, error) {
	var texts timesheet.BreakTexts
	cells, err := r.element.QuerySelectorAll(restRecordSelector)
	if err != nil {
		return texts, err
	}
	for _, cell := range cells {
		tag, err := cell.GetAttribute(recordTagAttribute)
		if err != nil {
			return texts, err
		}
		if tag != restStartRecordTag && tag != restEndRecordTag {
			continue
		}
		text, err := cell.TextContent()
		if err != nil {
			return texts, err
		}
		if tag == restStartRecordTag {
			texts.Start = text
		} else {
			texts.End = text
		}
	}
	return texts, nil
}
