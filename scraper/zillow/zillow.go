package zillow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/chromedp/chromedp"

	"zillow-scraper/config"
	"zillow-scraper/utils"
)

var (
	// ErrEmptyPage means the browser returned a page without any text.
	ErrEmptyPage = errors.New("zillow: page body is empty")
	// ErrBlocked means the bot challenge was served instead of results.
	ErrBlocked = errors.New("zillow: blocked by bot challenge")
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Scraper loads a Zillow search page in headless Chrome, scrolls it until no
// more listings load, and returns the visible page text.
type Scraper struct {
	cfg      *config.Config
	logger   *utils.Logger
	retry    *utils.RetryConfig
	progress io.Writer
}

// New creates a ready-to-use Zillow Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		progress: os.Stderr,
	}
}

// SetProgressOutput redirects the scroll progress bar. nil disables it.
func (s *Scraper) SetProgressOutput(w io.Writer) { s.progress = w }

// PageText drives the browser and returns document.body.innerText.
func (s *Scraper) PageText(ctx context.Context) (string, error) {
	chromeBin := findChromeBinary(s.cfg.ChromeBin)
	s.logger.Info("[zillow] Using browser binary: %s", displayBinary(chromeBin))

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, s.allocatorOptions(chromeBin)...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	// The first Run allocates the browser and must not carry a timeout.
	if err := chromedp.Run(browserCtx); err != nil {
		return "", fmt.Errorf("zillow: start browser: %w", err)
	}

	runCtx, cancelRun := context.WithTimeout(browserCtx, time.Duration(s.cfg.RunTimeoutMs)*time.Millisecond)
	defer cancelRun()

	if err := s.loadPage(runCtx); err != nil {
		return "", err
	}
	if err := s.scrollPage(runCtx); err != nil {
		return "", err
	}
	return s.extractPageText(runCtx)
}

func (s *Scraper) allocatorOptions(chromeBin string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.WindowSize(1366, 900),
		chromedp.UserAgent(userAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}
	return opts
}

// loadPage navigates to the search URL and waits until the document reports
// it has finished loading.
func (s *Scraper) loadPage(ctx context.Context) error {
	s.logger.Info("[zillow] Loading search page...")
	timeout := time.Duration(s.cfg.PageLoadTimeoutMs) * time.Millisecond

	err := s.retry.Do(ctx, "load-page", func() error {
		stepCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return chromedp.Run(stepCtx,
			chromedp.Navigate(s.cfg.SearchURL),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.Poll(`document.readyState === "complete"`, nil,
				chromedp.WithPollingInterval(250*time.Millisecond),
				chromedp.WithPollingTimeout(timeout)),
		)
	})
	if err != nil {
		return fmt.Errorf("zillow: load page: %w", err)
	}
	return nil
}

// scrollPage scrolls down in fixed increments. After each step it waits up to
// the scroll pause for the page to grow; if it does not, the end of the list
// has been reached.
func (s *Scraper) scrollPage(ctx context.Context) error {
	s.logger.Info("[zillow] Scrolling to load more listings (max %d steps)...", s.cfg.MaxScrolls)
	pause := time.Duration(s.cfg.ScrollPauseMs) * time.Millisecond

	var bar *pb.ProgressBar
	if s.progress != nil {
		bar = pb.Simple.New(s.cfg.MaxScrolls).SetWriter(s.progress).Start()
		defer bar.Finish()
	}

	var lastHeight int64
	if err := chromedp.Run(ctx, chromedp.Evaluate(`document.body.scrollHeight`, &lastHeight)); err != nil {
		return fmt.Errorf("zillow: read scroll height: %w", err)
	}

	for step := 1; step <= s.cfg.MaxScrolls; step++ {
		err := chromedp.Run(ctx,
			chromedp.Evaluate(fmt.Sprintf(`window.scrollBy(0, %d)`, s.cfg.ScrollIncrement), nil),
			chromedp.Poll(fmt.Sprintf(`document.body.scrollHeight > %d`, lastHeight), nil,
				chromedp.WithPollingInterval(200*time.Millisecond),
				chromedp.WithPollingTimeout(pause)),
		)
		if bar != nil {
			bar.Increment()
		}

		if errors.Is(err, chromedp.ErrPollingTimeout) {
			s.logger.Info("[zillow] Reached the end of the page after %d scrolls", step)
			return nil
		}
		if err != nil {
			return fmt.Errorf("zillow: scroll step %d: %w", step, err)
		}

		var newHeight int64
		if err := chromedp.Run(ctx, chromedp.Evaluate(`document.body.scrollHeight`, &newHeight)); err != nil {
			return fmt.Errorf("zillow: read scroll height: %w", err)
		}
		s.logger.Debug("[zillow] Scroll %d/%d, height %d -> %d", step, s.cfg.MaxScrolls, lastHeight, newHeight)
		lastHeight = newHeight
	}
	return nil
}

func (s *Scraper) extractPageText(ctx context.Context) (string, error) {
	s.logger.Info("[zillow] Extracting page text...")

	var text string
	if err := chromedp.Run(ctx, chromedp.Evaluate(`document.body.innerText`, &text)); err != nil {
		return "", fmt.Errorf("zillow: read page text: %w", err)
	}
	if err := checkPageText(text); err != nil {
		return "", err
	}

	s.logger.Info("[zillow] Page text extracted (%d bytes)", len(text))
	return text, nil
}

// checkPageText rejects text that cannot contain listings.
func checkPageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyPage
	}
	if strings.Contains(text, "Press & Hold") {
		return ErrBlocked
	}
	return nil
}

// findChromeBinary locates a Chrome/Chromium binary. An empty result lets
// chromedp fall back to its own lookup.
// findChromeBinary prefers CHROME_BIN, then PATH, then the usual install
// locations. An empty result lets chromedp pick its own default.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

func displayBinary(bin string) string {
	if bin == "" {
		return "(chromedp default)"
	}
	return bin
}
