package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tintama/tintama/pkg/page"
	"github.com/tintama/tintama/pkg/summary"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Summarize today from a saved attendance page",
	Long: `Summarize today's work and break time from an attendance page saved as HTML.

Examples:
  tintama today --file timecard.html
  curl -s "$URL" | tintama today --format json
  tintama today --file timecard.html --out timecard-today.html`,
	RunE: runToday,
}

var (
	todayFile   string
	todayOut    string
	todayFormat string
)

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVarP(&todayFile, "file", "f", "-", "HTML page to read, - for stdin")
	todayCmd.Flags().StringVarP(&todayOut, "out", "o", "", "Write the page with the summary widget to this file")
	todayCmd.Flags().StringVar(&todayFormat, "format", "text", "Output format: text, json or csv")
}

func runToday(cmd *cobra.Command, args []string) error {
	renderer, err := summary.RendererFor(todayFormat)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if todayFile != "-" {
		f, err := os.Open(todayFile)
		if err != nil {
			return fmt.Errorf("failed to open page: %w", err)
		}
		defer f.Close()
		in = f
	}

	p, err := page.ParseHTML(in, cfg.PageOptions())
	if err != nil {
		return err
	}

	c, err := currentClock()
	if err != nil {
		return err
	}
	result, err := summary.NewService(c).Run(cmd.Context(), p)
	if err != nil {
		return err
	}

	out, err := renderer.RenderResult(result)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	if todayOut != "" {
		var b bytes.Buffer
		if err := p.Render(&b); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		if err := os.WriteFile(todayOut, b.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}
		log.Debugf("Wrote page to %s", todayOut)
	}
	return nil
}
