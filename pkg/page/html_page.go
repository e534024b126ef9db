package page

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	log "github.com/sirupsen/logrus"
	"github.com/tintama/tintama/pkg/timesheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	daySel         = cascadia.MustCompile(daySelector)
	startEndRecSel = cascadia.MustCompile(startEndRecordSelector)
	restRecSel     = cascadia.MustCompile(restRecordSelector)
	bodySel        = cascadia.MustCompile("body")
)

var ErrNoBody = errors.New("document has no body")

// HTMLPage is a parsed attendance page. Rendering mutates the parsed document; Render
// writes it back out.
type HTMLPage struct {
	doc   *html.Node
	table cascadia.Selector
	opts  Options
}

func ParseHTML(r io.Reader, opts Options) (*HTMLPage, error) {
	opts = opts.withDefaults()
	table, err := cascadia.Compile(opts.TableSelector)
	if err != nil {
		return nil, fmt.Errorf("invalid table selector %q: %w", opts.TableSelector, err)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &HTMLPage{doc: doc, table: table, opts: opts}, nil
}

func (p *HTMLPage) Rows(ctx context.Context) ([]timesheet.Row, error) {
	tbody := p.table.MatchFirst(p.doc)
	if tbody == nil {
		log.Debugf("Timesheet table %q not found", p.opts.TableSelector)
		return nil, nil
	}
	children := elementChildren(tbody)
	rows := make([]timesheet.Row, 0, len(children))
	for _, child := range children {
		rows = append(rows, htmlRow{node: child})
	}
	return rows, nil
}

func (p *HTMLPage) RenderSummary(ctx context.Context, summary timesheet.Summary) error {
	body := bodySel.MatchFirst(p.doc)
	if body == nil {
		return ErrNoBody
	}
	body.InsertBefore(p.widget(summary), body.FirstChild)
	return nil
}

// Render writes the document, including any inserted widgets.
func (p *HTMLPage) Render(w io.Writer) error {
	return html.Render(w, p.doc)
}

func (p *HTMLPage) widget(summary timesheet.Summary) *html.Node {
	container := newDiv(widgetClass)
	for _, line := range widgetLines(p.opts.Labels, summary) {
		div := newDiv(line.Class)
		div.AppendChild(&html.Node{Type: html.TextNode, Data: line.Text})
		container.AppendChild(div)
	}
	return container
}

func newDiv(class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

type htmlRow struct {
	node *html.Node
}

func (r htmlRow) DayText() (string, bool, error) {
	day := daySel.MatchFirst(r.node)
	if day == nil {
		return "", false, nil
	}
	return textContent(day), true, nil
}

func (r htmlRow) ReadStartTimeTexts() ([]string, error) {
	var texts []string
	for _, cell := range startEndRecSel.MatchAll(r.node) {
		if attr(cell, recordTagAttribute) != startRecordTag {
			continue
		}
		texts = append(texts, textContent(cell))
	}
	return texts, nil
}

func (r htmlRow) ReadBreakTexts() (timesheet.BreakTexts, error) {
	var texts timesheet.BreakTexts
	for _, cell := range restRecSel.MatchAll(r.node) {
		switch attr(cell, recordTagAttribute) {
		case restStartRecordTag:
			texts.Start = textContent(cell)
		case restEndRecordTag:
			texts.End = textContent(cell)
		}
	}
	return texts, nil
}
