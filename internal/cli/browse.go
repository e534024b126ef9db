package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tintama/tintama/pkg/page"
	"github.com/tintama/tintama/pkg/summary"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the attendance page in a browser and insert the summary",
	Long: `Open the attendance page in Chromium, read today's row from the live page and
insert the summary widget at the top of it.

The attendance service requires a signed in session; pass a playwright storage
state file holding its cookies. With --headless=false the browser stays open
until interrupted.

Examples:
  tintama browse --url https://s2.kingtime.jp/admin --storage-state state.json
  tintama browse --url "$URL" --storage-state state.json --screenshot today.png`,
	RunE: runBrowse,
}

var (
	browseUrl          string
	browseStorageState string
	browseScreenshot   string
	browseHeadless     bool
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVar(&browseUrl, "url", "", "Attendance page URL (default browser.url from config)")
	browseCmd.Flags().StringVar(&browseStorageState, "storage-state", "", "Playwright storage state file of a signed in session")
	browseCmd.Flags().StringVar(&browseScreenshot, "screenshot", "", "Save a full page screenshot after rendering")
	browseCmd.Flags().BoolVar(&browseHeadless, "headless", true, "Run the browser without a window")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts := cfg.BrowserOptions()
	url := cfg.Browser.Url
	if browseUrl != "" {
		url = browseUrl
	}
	if url == "" {
		return fmt.Errorf("no attendance page URL, use --url or browser.url")
	}
	if browseStorageState != "" {
		opts.StorageStatePath = browseStorageState
	}
	if cmd.Flags().Changed("headless") {
		opts.Headless = browseHeadless
	}

	session, err := page.StartBrowserSession(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warnf("failed to close browser session: %v", err)
		}
	}()

	if err := session.Navigate(url); err != nil {
		return err
	}

	c, err := currentClock()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	result, err := summary.NewService(c).Run(ctx, page.NewBrowserPage(session, cfg.PageOptions()))
	if err != nil {
		return err
	}

	out, err := summary.NewTextResultRenderer().RenderResult(result)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	if browseScreenshot != "" {
		if err := session.Screenshot(browseScreenshot); err != nil {
			return err
		}
		log.Infof("Saved screenshot to %s", browseScreenshot)
	}

	if !opts.Headless {
		log.Info("Browser is open, press Ctrl+C to close it")
		<-ctx.Done()
	}
	return nil
}
