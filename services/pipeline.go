package services

import (
	"context"
	"fmt"

	"zillow-scraper/models"
	"zillow-scraper/scraper"
	"zillow-scraper/utils"
)

// Pipeline turns page text into the combined listing table:
// fetch, extract, tabulate, filter, then append the filtered rows to the
// static listings.
type Pipeline struct {
	source   scraper.PageSource
	static   []models.Listing
	criteria Criteria
	logger   *utils.Logger
}

// NewPipeline creates a Pipeline. A nil source skips fetching and yields the
// static listings alone.
func NewPipeline(source scraper.PageSource, static []models.Listing, criteria Criteria, logger *utils.Logger) *Pipeline {
	return &Pipeline{
		source:   source,
		static:   static,
		criteria: criteria,
		logger:   logger,
	}
}

// Run executes the pipeline once. A fetch failure stops the run.
func (p *Pipeline) Run(ctx context.Context) (models.ListingTable, error) {
	var text string
	if p.source != nil {
		var err error
		text, err = p.source.PageText(ctx)
		if err != nil {
			return models.ListingTable{}, fmt.Errorf("pipeline: fetch page text: %w", err)
		}
	} else {
		p.logger.Warn("[pipeline] No page source configured, using static listings only")
	}

	scraped := Tabulate(Extract(text))
	p.logger.Info("[pipeline] Parsed %d listings from page text", scraped.Len())

	filtered := Filter(scraped, p.criteria)
	p.logger.Info("[pipeline] Filtered %d → %d listings (min %d beds, min %d sqft)",
		scraped.Len(), filtered.Len(), p.criteria.MinBeds, p.criteria.MinSqft)

	combined, err := Aggregate(models.NewListingTable(p.static), filtered)
	if err != nil {
		return models.ListingTable{}, fmt.Errorf("pipeline: %w", err)
	}

	p.logger.Info("[pipeline] Combined table: %d static + %d scraped = %d listings",
		len(p.static), filtered.Len(), combined.Len())
	return combined, nil
}
