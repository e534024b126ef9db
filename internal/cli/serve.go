package cli

import (
	"github.com/spf13/cobra"
	"github.com/tintama/tintama/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the summary HTTP API",
	Long: `Start the HTTP API. POST an attendance page to /api/summary to get today's
summary as JSON, CSV (Accept: text/csv) or the page with the widget inserted
(Accept: text/html).

Examples:
  tintama serve
  tintama serve --addr :3000`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default server.addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}
