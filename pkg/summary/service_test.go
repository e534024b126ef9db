package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tintama/tintama/internal/utils"
	"github.com/tintama/tintama/pkg/timesheet"
)

var location, _ = time.LoadLocation("Asia/Tokyo")

func setupServiceTest(t *testing.T) (*ServiceImpl, *utils.MockClock, *test.Hook) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.April, 7, 13, 0, 0, 0, location)}
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)
	return NewService(clock), clock, hook
}

func warnings(hook *test.Hook) []*logrus.Entry {
	var entries []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			entries = append(entries, entry)
		}
	}
	return entries
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("renders summary for today's row", func(t *testing.T) {
		service, _, hook := setupServiceTest(t)
		p := newStubPage(
			timesheet.NewStubRow("04/06").WithStartTimes("08:00"),
			timesheet.NewStubRow("04/07").WithStartTimes("09:00").WithBreaks("12:00", "12:30"),
		)

		result, err := service.Run(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, timesheet.StatusOK, result.Status)
		require.Len(t, p.rendered, 1)
		assert.Equal(t, "3:30", timesheet.FormatMinutes(p.rendered[0].WorkMinutes))
		assert.Equal(t, "0:30", timesheet.FormatMinutes(p.rendered[0].BreakMinutes))
		assert.Empty(t, warnings(hook))
	})

	t.Run("open break is measured against the clock", func(t *testing.T) {
		service, clock, _ := setupServiceTest(t)
		clock.SetNow(time.Date(2025, time.April, 7, 12, 10, 0, 0, location))
		p := newStubPage(timesheet.NewStubRow("04/07").WithStartTimes("09:00").WithBreaks("12:00", ""))

		result, err := service.Run(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, timesheet.Summary{WorkMinutes: 180, BreakMinutes: 10}, result.Summary)
	})

	t.Run("no row today logs one warning and renders nothing", func(t *testing.T) {
		service, _, hook := setupServiceTest(t)
		p := newStubPage(timesheet.NewStubRow("04/06").WithStartTimes("09:00"))

		result, err := service.Run(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, timesheet.StatusNoRowToday, result.Status)
		assert.Empty(t, p.rendered)
		assert.Len(t, warnings(hook), 1)
	})

	t.Run("no start time", func(t *testing.T) {
		service, _, hook := setupServiceTest(t)
		p := newStubPage(timesheet.NewStubRow("04/07"))

		result, err := service.Run(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, timesheet.StatusNoStartTime, result.Status)
		assert.Empty(t, p.rendered)
		assert.Len(t, warnings(hook), 1)
	})

	t.Run("more than one unfinished break", func(t *testing.T) {
		service, _, hook := setupServiceTest(t)
		p := newStubPage(timesheet.NewStubRow("04/07").WithStartTimes("09:00").WithBreaks("10:00 12:00", ""))

		result, err := service.Run(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, timesheet.StatusAmbiguousBreaks, result.Status)
		assert.Empty(t, p.rendered)
		assert.Len(t, warnings(hook), 1)
	})

	t.Run("rows read failure is returned", func(t *testing.T) {
		service, _, _ := setupServiceTest(t)
		p := newStubPage()
		p.rowsErr = errors.New("browser closed")

		_, err := service.Run(ctx, p)

		assert.Error(t, err)
		assert.Empty(t, p.rendered)
	})

	t.Run("render failure is returned", func(t *testing.T) {
		service, _, _ := setupServiceTest(t)
		p := newStubPage(timesheet.NewStubRow("04/07").WithStartTimes("09:00"))
		p.renderErr = errors.New("no body")

		result, err := service.Run(ctx, p)

		assert.Error(t, err)
		assert.Equal(t, timesheet.StatusOK, result.Status)
	})
}
