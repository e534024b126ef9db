package page

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tintama/tintama/pkg/timesheet"
	"golang.org/x/net/html"
)

func loadFixture(t *testing.T) *HTMLPage {
	t.Helper()
	f, err := os.Open("testdata/timesheet.html")
	require.NoError(t, err)
	defer f.Close()
	p, err := ParseHTML(f, Options{})
	require.NoError(t, err)
	return p
}

func TestHTMLPage_Rows(t *testing.T) {
	p := loadFixture(t)

	rows, err := p.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	day, ok, err := rows[1].DayText()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "04/07（月）", day)

	starts, err := rows[1].ReadStartTimeTexts()
	require.NoError(t, err)
	require.Len(t, starts, 1)
	assert.Contains(t, starts[0], "09:00")

	breaks, err := rows[1].ReadBreakTexts()
	require.NoError(t, err)
	assert.Equal(t, "12:0015:00", breaks.Start)
	assert.Equal(t, "12:30", breaks.End)
}

func TestHTMLPage_RowsWithoutTable(t *testing.T) {
	p, err := ParseHTML(strings.NewReader("<html><body><table><tr><td>04/07</td></tr></table></body></html>"), Options{})
	require.NoError(t, err)

	rows, err := p.Rows(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHTMLPage_RowWithoutDayCell(t *testing.T) {
	doc := `<div class="htBlock-adjastableTableF"><div><table><tbody>
		<tr><td class="other"><p>04/07</p></td></tr>
	</tbody></table></div></div>`
	p, err := ParseHTML(strings.NewReader(doc), Options{})
	require.NoError(t, err)

	rows, err := p.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, ok, err := rows[0].DayText()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHTMLPage_CustomTableSelector(t *testing.T) {
	doc := `<table class="sheet"><tbody><tr><td class="htBlock-scrollTable_day"><p>04/07</p></td></tr></tbody></table>`
	p, err := ParseHTML(strings.NewReader(doc), Options{TableSelector: "table.sheet > tbody"})
	require.NoError(t, err)

	rows, err := p.Rows(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestHTMLPage_TableSelectors(t *testing.T) {
	doc := `<html><body>
	<div class="htBlock-adjastableTableF"><div><div class="scroll"><table id="timecard"><tbody>
		<tr><td class="htBlock-scrollTable_day"><p>04/06</p></td></tr>
		<tr><td class="htBlock-scrollTable_day"><p>04/07</p></td></tr>
	</tbody></table></div></div></div>
	</body></html>`

	tests := []struct {
		name     string
		selector string
		rows     int
	}{
		{name: "descendant combinator", selector: "div.htBlock-adjastableTableF table > tbody", rows: 2},
		{name: "id", selector: "#timecard > tbody", rows: 2},
		{name: "attribute", selector: "table[id=timecard] tbody", rows: 2},
		{name: "default path does not match an extra wrapper", selector: DefaultTableSelector, rows: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseHTML(strings.NewReader(doc), Options{TableSelector: tt.selector})
			require.NoError(t, err)

			rows, err := p.Rows(context.Background())

			require.NoError(t, err)
			assert.Len(t, rows, tt.rows)
		})
	}
}

func TestParseHTML_InvalidSelector(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<html></html>"), Options{TableSelector: "table >"})
	assert.ErrorContains(t, err, "invalid table selector")
}

func TestHTMLPage_RenderSummary(t *testing.T) {
	p := loadFixture(t)

	err := p.RenderSummary(context.Background(), timesheet.Summary{WorkMinutes: 210, BreakMinutes: 30})
	require.NoError(t, err)

	body := bodySel.MatchFirst(p.doc)
	require.NotNil(t, body)
	widget := body.FirstChild
	assert.Equal(t, "div", widget.Data)
	assert.Equal(t, widgetClass, attr(widget, "class"))

	lines := elementChildren(widget)
	require.Len(t, lines, 2)
	assert.Equal(t, widgetBreakTimeClass, attr(lines[0], "class"))
	assert.Equal(t, "休憩時間：0:30", textContent(lines[0]))
	assert.Equal(t, widgetWorkTimeClass, attr(lines[1], "class"))
	assert.Equal(t, "今日の労働時間：3:30", textContent(lines[1]))

	var out bytes.Buffer
	require.NoError(t, p.Render(&out))
	assert.Contains(t, out.String(), `<body><div class="tintama-today"><div class="tintama-today--breaktime">休憩時間：0:30</div>`)
}

func TestHTMLPage_RenderSummaryTwiceInsertsTwoWidgets(t *testing.T) {
	p := loadFixture(t)
	ctx := context.Background()

	require.NoError(t, p.RenderSummary(ctx, timesheet.Summary{WorkMinutes: 1, BreakMinutes: 0}))
	require.NoError(t, p.RenderSummary(ctx, timesheet.Summary{WorkMinutes: 2, BreakMinutes: 0}))

	widgets := cascadia.MustCompile("div.tintama-today").MatchAll(p.doc)
	assert.Len(t, widgets, 2)
	assert.Equal(t, "今日の労働時間：0:02", textContent(elementChildren(widgets[0])[1]))
}

func TestHTMLPage_CustomLabels(t *testing.T) {
	p, err := ParseHTML(strings.NewReader("<html><body></body></html>"), Options{
		Labels: Labels{Work: "work time: ", Break: "break time: "},
	})
	require.NoError(t, err)

	require.NoError(t, p.RenderSummary(context.Background(), timesheet.Summary{WorkMinutes: 65, BreakMinutes: 5}))

	var out bytes.Buffer
	require.NoError(t, p.Render(&out))
	assert.Contains(t, out.String(), "break time: 0:05")
	assert.Contains(t, out.String(), "work time: 1:05")
}

func TestValidateSelector(t *testing.T) {
	assert.NoError(t, ValidateSelector(DefaultTableSelector))
	assert.NoError(t, ValidateSelector("#timecard > tbody"))
	assert.Error(t, ValidateSelector(""))
	assert.Error(t, ValidateSelector("div >"))
}

func TestNodeHelpers(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div class="a b" data-x="1">one<p>two<br>three</p><!-- c --><span></span></div>`))
	require.NoError(t, err)

	div := cascadia.MustCompile("div").MatchFirst(doc)
	require.NotNil(t, div)
	assert.Equal(t, "1", attr(div, "data-x"))
	assert.Equal(t, "", attr(div, "data-y"))
	assert.Equal(t, "onetwothree", textContent(div))
	assert.Len(t, elementChildren(div), 2)
}
