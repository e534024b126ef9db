package page

import (
	"errors"
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBrowserTimeout = 30000.0
	DefaultTableWait      = 5000.0
)

type BrowserOptions struct {
	Headless bool
	// StorageStatePath points at a playwright storage state (cookies, local storage)
	// of an already signed in attendance session.
	StorageStatePath string
	// Timeout in milliseconds for navigation.
	Timeout float64
	// TableWait in milliseconds the table may take to appear once the document is
	// loaded. Pages without a timesheet give up after this.
	TableWait float64
}

func (o BrowserOptions) withDefaults() BrowserOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultBrowserTimeout
	}
	if o.TableWait <= 0 {
		o.TableWait = DefaultTableWait
	}
	if o.TableWait > o.Timeout {
		o.TableWait = o.Timeout
	}
	return o
}

// BrowserSession owns a playwright driver, a Chromium instance and the single page
// the attendance sheet is opened in.
type BrowserSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	Page      playwright.Page
	timeout   float64
	tableWait float64
}

func StartBrowserSession(opts BrowserOptions) (*BrowserSession, error) {
	opts = opts.withDefaults()

	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}
	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{}
	if opts.StorageStatePath != "" {
		contextOpts.StorageStatePath = playwright.String(opts.StorageStatePath)
	}
	context, err := browser.NewContext(contextOpts)
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &BrowserSession{
		pw:        pw,
		browser:   browser,
		context:   context,
		Page:      page,
		timeout:   opts.Timeout,
		tableWait: opts.TableWait,
	}, nil
}

func (s *BrowserSession) Navigate(url string) error {
	log.Debugf("Navigating to %s", url)
	_, err := s.Page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.timeout),
	})
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (s *BrowserSession) Screenshot(path string) error {
	_, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}
	return nil
}

// Close releases the page, the browser and the driver, in that order.
func (s *BrowserSession) Close() error {
	var errs []error
	if err := s.context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close context: %w", err))
	}
	if err := s.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
	}
	if err := s.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
	}
	return errors.Join(errs...)
}
