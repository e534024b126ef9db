package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tintama/tintama/internal/config"
	"github.com/tintama/tintama/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "tintama",
	Short: "Today's work and break time for an attendance timesheet page",
	Long: `tintama reads the monthly timesheet of an attendance page, finds today's row
and computes the work and break time so far.

The summary is inserted at the top of the page, either into a saved HTML page,
into a live page opened in a browser, or through the HTTP API.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	configPath string
	cfg        config.Application
	// clock is replaced in tests; nil means the system clock in the configured zone.
	clock utils.Clock
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML configuration file")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	if cfg.Log.Level != "" && os.Getenv("LOG_LEVEL") == "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		log.SetLevel(level)
	}
	return nil
}

func currentClock() (utils.Clock, error) {
	if clock != nil {
		return clock, nil
	}
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return utils.SystemClock{Location: location}, nil
}
