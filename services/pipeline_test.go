package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"zillow-scraper/models"
	"zillow-scraper/scraper/snapshot"
	"zillow-scraper/utils"
)

type stubSource struct {
	text  string
	err   error
	calls int
}

func (s *stubSource) PageText(context.Context) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestPipelineCombinesStaticAndFiltered(t *testing.T) {
	src := &stubSource{text: "Homes for sale\n" +
		block("9 Tiny Ln, Aiken, SC 29803", "Agent", "$99,000", "1 bds1 ba700 sqft") + "\n" +
		block("10 Roomy Rd, Aiken, SC 29803", "Agent", "$230,000", "3 bds2 ba1,900 sqft")}
	static := []models.Listing{
		listing("1 Static St, Greer, SC 29650", 200000, 3, 2, 1500),
		listing("2 Static St, Greer, SC 29650", 210000, 2, 2, 1300),
	}

	p := NewPipeline(src, static, DefaultCriteria(), utils.Discard())
	got, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{
		"1 Static St, Greer, SC 29650",
		"2 Static St, Greer, SC 29650",
		"10 Roomy Rd, Aiken, SC 29803",
	}, addresses(got))
	require.Equal(t, 1, src.calls)
}

func TestPipelinePropagatesFetchError(t *testing.T) {
	boom := errors.New("browser crashed")
	p := NewPipeline(&stubSource{err: boom}, models.StaticListings(), DefaultCriteria(), utils.Discard())

	got, err := p.Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, got.Len())
}

func TestPipelineNoMatchesKeepsStatic(t *testing.T) {
	p := NewPipeline(&stubSource{text: "No matching results"}, models.StaticListings(), DefaultCriteria(), utils.Discard())

	got, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 41, got.Len())
}

func TestPipelineWithoutSource(t *testing.T) {
	p := NewPipeline(nil, models.StaticListings(), DefaultCriteria(), utils.Discard())

	got, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.NewListingTable(models.StaticListings()), got)
}

func TestPipelineRunsAreIndependent(t *testing.T) {
	src := &stubSource{text: stoneMeadowBlock}
	p := NewPipeline(src, nil, DefaultCriteria(), utils.Discard())

	first, err := p.Run(context.Background())
	require.NoError(t, err)
	second, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, first.Len())
	require.Equal(t, 1, second.Len())
}

func TestPipelineFromSnapshot(t *testing.T) {
	src := snapshot.New("../scraper/snapshot/testdata/search.html")
	p := NewPipeline(src, nil, DefaultCriteria(), utils.Discard())

	got, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.Listing{
		listing("7 Stone Meadow Rd, Greenville, SC 29615", 215000, 2, 2, 1457),
		listing("302 West Rd, Greer, SC 29650", 213000, 3, 2, 1484),
	}, got.Rows)
}
