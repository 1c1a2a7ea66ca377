package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"zillow-scraper/config"
	"zillow-scraper/models"
	"zillow-scraper/render"
	"zillow-scraper/scraper"
	"zillow-scraper/scraper/snapshot"
	"zillow-scraper/scraper/zillow"
	"zillow-scraper/services"
	"zillow-scraper/utils"
)

type options struct {
	url        string
	snapshot   string
	minBeds    int
	minSqft    int
	maxPrice   int
	format     string
	columns    []string
	staticOnly bool
	noSummary  bool
	debug      bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "zillow-scraper",
	Short: "zillow-scraper extracts listings from a Zillow search page and merges them with the static set.",
	Long: "zillow-scraper loads a Zillow search page in headless Chrome, scrolls until no more\n" +
		"listings load, parses address/price/beds/baths/sqft from the page text, keeps the\n" +
		"listings meeting the bed and square-footage minimums, and prints them after the\n" +
		"hand-collected static listings.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cmd.Context(), cfg, opts, cmd.OutOrStdout())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.url, "url", "", "Zillow search URL (overrides ZILLOW_URL)")
	f.StringVar(&opts.snapshot, "snapshot", "", "read page text from a saved .html or .txt file instead of a browser")
	f.IntVar(&opts.minBeds, "min-beds", 0, "minimum bedrooms (overrides MIN_BEDS)")
	f.IntVar(&opts.minSqft, "min-sqft", 0, "minimum square footage (overrides MIN_SQFT)")
	f.IntVar(&opts.maxPrice, "max-price", 0, "maximum price, 0 for none (overrides MAX_PRICE)")
	f.StringVarP(&opts.format, "format", "o", "", "output format: "+strings.Join(render.Formats, ", ")+" (overrides OUTPUT_FORMAT)")
	f.StringSliceVar(&opts.columns, "columns", nil, "columns to print: "+strings.Join(models.ListingColumns, ","))
	f.BoolVar(&opts.staticOnly, "static-only", false, "skip scraping and print the static listings")
	f.BoolVar(&opts.noSummary, "no-summary", false, "do not print the market summary")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.MarkFlagsMutuallyExclusive("snapshot", "static-only")
}

// ExecuteContext runs the root command and exits non-zero on failure.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("url") {
		cfg.SearchURL = opts.url
	}
	if f.Changed("min-beds") {
		cfg.MinBeds = opts.minBeds
	}
	if f.Changed("min-sqft") {
		cfg.MinSqft = opts.minSqft
	}
	if f.Changed("max-price") {
		cfg.MaxPrice = opts.maxPrice
	}
	if f.Changed("format") {
		cfg.OutputFormat = strings.ToLower(opts.format)
	}
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
}

func run(ctx context.Context, cfg *config.Config, o options, out io.Writer) error {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "table"
	}
	renderer, err := render.New(cfg.OutputFormat)
	if err != nil {
		return err
	}
	for _, c := range o.columns {
		if !slices.Contains(models.ListingColumns, c) {
			return fmt.Errorf("unknown column %q (want any of %s)", c, strings.Join(models.ListingColumns, ","))
		}
	}

	// Keep stdout clean for machine-readable formats.
	logger := utils.NewLogger(cfg.Debug)
	if cfg.OutputFormat != "table" {
		logger = utils.NewLoggerTo(os.Stderr, cfg.Debug)
	}

	logger.Info("=== Zillow Listing Scraper starting ===")
	logger.Debug("Config: scrolls %d x %dpx, pause %dms, min beds %d, min sqft %d, max price %d",
		cfg.MaxScrolls, cfg.ScrollIncrement, cfg.ScrollPauseMs, cfg.MinBeds, cfg.MinSqft, cfg.MaxPrice)

	var source scraper.PageSource
	switch {
	case o.staticOnly:
	case o.snapshot != "":
		logger.Info("Reading page snapshot %s", o.snapshot)
		source = snapshot.New(o.snapshot)
	default:
		source = zillow.New(cfg, logger)
	}

	criteria := services.Criteria{MinBeds: cfg.MinBeds, MinSqft: cfg.MinSqft, MaxPrice: cfg.MaxPrice}
	pipeline := services.NewPipeline(source, models.StaticListings(), criteria, logger)

	combined, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	shown := combined
	if len(o.columns) > 0 {
		shown = combined.Project(o.columns...)
	}
	if err := renderer.Render(out, shown); err != nil {
		return fmt.Errorf("render %s: %w", cfg.OutputFormat, err)
	}

	if cfg.OutputFormat == "table" && !o.noSummary {
		insights := services.NewInsightService(logger)
		insights.Print(out, insights.Generate(combined))
	}
	return nil
}
