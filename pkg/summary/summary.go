package summary

import (
	"time"

	"github.com/tintama/tintama/pkg/timesheet"
)

type PeriodDTO struct {
	Start   string  `json:"start"`
	End     *string `json:"end"`
	Minutes int     `json:"minutes"`
}

type ResultDTO struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	WorkTime     string      `json:"workTime,omitempty"`
	BreakTime    string      `json:"breakTime,omitempty"`
	WorkMinutes  int         `json:"workMinutes"`
	BreakMinutes int         `json:"breakMinutes"`
	StartTime    *string     `json:"startTime,omitempty"`
	Breaks       []PeriodDTO `json:"breaks"`
	EvaluatedAt  string      `json:"evaluatedAt"`
}

func ResultToDTO(result timesheet.Result) ResultDTO {
	dto := ResultDTO{
		Status:      result.Status.String(),
		Message:     result.Message(),
		Breaks:      make([]PeriodDTO, 0, len(result.Breaks)),
		EvaluatedAt: result.EvaluatedAt.Format(time.RFC3339),
	}
	if result.OK() {
		dto.WorkTime = timesheet.FormatMinutes(result.Summary.WorkMinutes)
		dto.BreakTime = timesheet.FormatMinutes(result.Summary.BreakMinutes)
		dto.WorkMinutes = result.Summary.WorkMinutes
		dto.BreakMinutes = result.Summary.BreakMinutes
	}
	if !result.StartTime.IsZero() {
		start := result.StartTime.Format(time.RFC3339)
		dto.StartTime = &start
	}
	for _, b := range result.Breaks {
		periodDTO := PeriodDTO{
			Start:   b.Start.Format(time.RFC3339),
			Minutes: timesheet.Duration(b, result.EvaluatedAt),
		}
		if b.End != nil {
			end := b.End.Format(time.RFC3339)
			periodDTO.End = &end
		}
		dto.Breaks = append(dto.Breaks, periodDTO)
	}
	return dto
}
