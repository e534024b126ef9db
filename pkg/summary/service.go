package summary

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tintama/tintama/internal/utils"
	"github.com/tintama/tintama/pkg/page"
	"github.com/tintama/tintama/pkg/timesheet"
)

type Service interface {
	// Run evaluates today's row of the page and inserts the summary widget. Missing or
	// inconsistent data is reported in the result status and leaves the page untouched.
	Run(ctx context.Context, p page.Page) (timesheet.Result, error)
}

type ServiceImpl struct {
	clock utils.Clock
}

func NewService(clock utils.Clock) *ServiceImpl {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &ServiceImpl{clock: clock}
}

func (s *ServiceImpl) Run(ctx context.Context, p page.Page) (timesheet.Result, error) {
	rows, err := p.Rows(ctx)
	if err != nil {
		err := fmt.Errorf("failed to read timesheet rows: %w", err)
		log.Error(err)
		return timesheet.Result{}, err
	}
	log.Debugf("Read %d timesheet rows", len(rows))

	now := s.clock.Now()
	result, err := timesheet.Evaluate(rows, now)
	if err != nil {
		log.Errorf("failed to evaluate timesheet: %v", err)
		return timesheet.Result{}, err
	}
	if !result.OK() {
		log.WithField("status", result.Status.String()).Warn(result.Message())
		return result, nil
	}

	log.Infof("Work time: %s", timesheet.FormatMinutes(result.Summary.WorkMinutes))
	log.Infof("Break time: %s", timesheet.FormatMinutes(result.Summary.BreakMinutes))

	if err := p.RenderSummary(ctx, result.Summary); err != nil {
		err := fmt.Errorf("failed to render summary: %w", err)
		log.Error(err)
		return result, err
	}
	return result, nil
}
