package summary

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tintama/tintama/pkg/timesheet"
)

const clockLayout = "15:04"

type ResultRenderer interface {
	RenderResult(result timesheet.Result) (string, error)
}

// RendererFor returns the renderer for one of the output formats "text", "json" or "csv".
func RendererFor(format string) (ResultRenderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextResultRenderer(), nil
	case "json":
		return NewJsonResultRenderer(), nil
	case "csv":
		return NewCsvResultRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

type TextResultRendererImpl struct {
}

func NewTextResultRenderer() *TextResultRendererImpl {
	return &TextResultRendererImpl{}
}

func (t *TextResultRendererImpl) RenderResult(result timesheet.Result) (string, error) {
	if !result.OK() {
		return fmt.Sprintf("No summary: %s\n", result.Message()), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Clock-in:   %s\n", result.StartTime.Format(clockLayout))
	fmt.Fprintf(&b, "Work time:  %s\n", timesheet.FormatMinutes(result.Summary.WorkMinutes))
	fmt.Fprintf(&b, "Break time: %s\n", timesheet.FormatMinutes(result.Summary.BreakMinutes))
	for i, period := range result.Breaks {
		end := "..."
		if period.End != nil {
			end = period.End.Format(clockLayout)
		}
		fmt.Fprintf(&b, "  Break %d: %s - %s (%s)\n", i+1, period.Start.Format(clockLayout), end,
			timesheet.FormatMinutes(timesheet.Duration(period, result.EvaluatedAt)))
	}
	return b.String(), nil
}

type JsonResultRendererImpl struct {
}

func NewJsonResultRenderer() *JsonResultRendererImpl {
	return &JsonResultRendererImpl{}
}

func (t *JsonResultRendererImpl) RenderResult(result timesheet.Result) (string, error) {
	data, err := json.MarshalIndent(ResultToDTO(result), "", "  ")
	if err != nil {
		log.Errorf("Error encoding result: %v", err)
		return "", err
	}
	return string(data) + "\n", nil
}

type CsvResultRendererImpl struct {
}

func NewCsvResultRenderer() *CsvResultRendererImpl {
	return &CsvResultRendererImpl{}
}

func (t *CsvResultRendererImpl) RenderResult(result timesheet.Result) (string, error) {
	data := make([][]string, 0, len(result.Breaks)+4)
	data = append(data, []string{"", "Start", "End", "Duration"})
	if result.OK() {
		data = append(data, []string{"Work", result.StartTime.Format(clockLayout), "",
			timesheet.FormatMinutes(result.Summary.WorkMinutes)})
	}
	for i, period := range result.Breaks {
		end := ""
		if period.End != nil {
			end = period.End.Format(clockLayout)
		}
		data = append(data, []string{"Break " + strconv.Itoa(i+1), period.Start.Format(clockLayout), end,
			timesheet.FormatMinutes(timesheet.Duration(period, result.EvaluatedAt))})
	}
	if result.OK() {
		data = append(data, []string{"Break total", "", "", timesheet.FormatMinutes(result.Summary.BreakMinutes)})
	} else {
		data = append(data, []string{"Status", result.Status.String(), "", ""})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
