package page

import (
	"github.com/tintama/tintama/pkg/timesheet"
)

const (
	widgetClass          = "tintama-today"
	widgetWorkTimeClass  = "tintama-today--worktime"
	widgetBreakTimeClass = "tintama-today--breaktime"
)

// Labels are the prefixes of the two widget lines.
type Labels struct {
	Work  string
	Break string
}

var DefaultLabels = Labels{
	Work:  "今日の労働時間：",
	Break: "休憩時間：",
}

func (l Labels) withDefaults() Labels {
	if l.Work == "" {
		l.Work = DefaultLabels.Work
	}
	if l.Break == "" {
		l.Break = DefaultLabels.Break
	}
	return l
}

type widgetLine struct {
	Class string
	Text  string
}

// widgetLines returns the widget content in display order, break time first.
func widgetLines(labels Labels, summary timesheet.Summary) []widgetLine {
	return []widgetLine{
		{Class: widgetBreakTimeClass, Text: labels.Break + timesheet.FormatMinutes(summary.BreakMinutes)},
		{Class: widgetWorkTimeClass, Text: labels.Work + timesheet.FormatMinutes(summary.WorkMinutes)},
	}
}
