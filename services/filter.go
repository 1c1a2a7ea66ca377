package services

import (
	"slices"

	"zillow-scraper/models"
)

// Criteria are the thresholds a listing must meet to be kept.
// MaxPrice of zero means no price ceiling.
type Criteria struct {
	MinBeds  int
	MinSqft  int
	MaxPrice int
}

// DefaultCriteria matches the search the scraper targets: at least 2 beds and
// 1,250 sqft.
func DefaultCriteria() Criteria {
	return Criteria{MinBeds: 2, MinSqft: 1250}
}

// Match reports whether a single listing meets the criteria.
func (c Criteria) Match(l models.Listing) bool {
	if l.Beds < c.MinBeds || l.Sqft < c.MinSqft {
		return false
	}
	return c.MaxPrice <= 0 || l.Price <= c.MaxPrice
}

// Filter returns a new table holding the rows that match c, in their original
// order. The input table is not modified.
func Filter(t models.ListingTable, c Criteria) models.ListingTable {
	out := models.ListingTable{Columns: slices.Clone(t.Columns)}
	for _, l := range t.Rows {
		if c.Match(l) {
			out.Rows = append(out.Rows, l)
		}
	}
	return out
}
