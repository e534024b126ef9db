package app

import (
	"fmt"

	"github.com/tintama/tintama/internal/config"
	"github.com/tintama/tintama/internal/utils"
	"github.com/tintama/tintama/pkg/summary"
)

type Dependencies struct {
	SummaryService summary.Service
	SummaryHandler *summary.Handler
}

func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	summaryService := summary.NewService(utils.SystemClock{Location: location})

	return &Dependencies{
		SummaryService: summaryService,
		SummaryHandler: summary.NewHandler(summaryService, cfg.PageOptions()),
	}, nil
}
