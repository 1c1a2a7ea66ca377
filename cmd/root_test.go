package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"zillow-scraper/config"
)

func testConfig(format string) *config.Config {
	return &config.Config{
		SearchURL:    config.DefaultSearchURL,
		MinBeds:      2,
		MinSqft:      1250,
		OutputFormat: format,
	}
}

func TestRunStaticOnlyCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig("csv"), options{staticOnly: true}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 42)
	require.Equal(t, "address,price,beds,baths,sqft", lines[0])
	require.Equal(t, `"5358 Carolina Hwy, Denmark, SC 29042",220000,7,9,4187`, lines[1])
}

func TestRunSnapshotAppendsScrapedRows(t *testing.T) {
	o := options{snapshot: "../scraper/snapshot/testdata/search.html", columns: []string{"address", "sqft"}}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig("csv"), o, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 44)
	require.Equal(t, "address,sqft", lines[0])
	require.Equal(t, `"7 Stone Meadow Rd, Greenville, SC 29615",1457`, lines[42])
	require.Equal(t, `"302 West Rd, Greer, SC 29650",1484`, lines[43])
}

func TestRunSnapshotMissingFileFails(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), testConfig("json"), options{snapshot: "testdata/does-not-exist.html"}, &buf)
	require.Error(t, err)
	require.Empty(t, buf.String(), "nothing is rendered when fetching fails")
}

func TestRunTableIncludesSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig("table"), options{staticOnly: true}, &buf))
	require.Contains(t, buf.String(), "MARKET SUMMARY")
	require.Contains(t, buf.String(), "$220,000")
}

func TestRunRejectsBadInput(t *testing.T) {
	badColumn := options{staticOnly: true, columns: []string{"zip"}}
	require.ErrorContains(t, run(context.Background(), testConfig("csv"), badColumn, &bytes.Buffer{}), `unknown column "zip"`)

	require.ErrorContains(t, run(context.Background(), testConfig("xml"), options{staticOnly: true}, &bytes.Buffer{}), "unknown format")
}

func TestApplyFlagsOverridesOnlyChanged(t *testing.T) {
	saved := opts
	t.Cleanup(func() { opts = saved })
	require.NoError(t, rootCmd.ParseFlags([]string{"--min-beds", "4", "--format", "JSON"}))

	cfg := testConfig("table")
	cfg.MinSqft = 1800
	applyFlags(rootCmd, cfg)

	require.Equal(t, 4, cfg.MinBeds)
	require.Equal(t, 1800, cfg.MinSqft, "unchanged flags keep the configured value")
	require.Equal(t, "json", cfg.OutputFormat)
}

func TestRunIgnoresParsedFlags(t *testing.T) {
	saved := opts
	t.Cleanup(func() { opts = saved })
	opts = options{snapshot: "testdata/does-not-exist.html"}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig("csv"), options{staticOnly: true}, &buf))
	require.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 42)
}
