package models

import "slices"

// Column names shared by every listing table.
const (
	ColAddress = "address"
	ColPrice   = "price"
	ColBeds    = "beds"
	ColBaths   = "baths"
	ColSqft    = "sqft"
)

// ListingColumns is the canonical column set, in display order.
var ListingColumns = []string{ColAddress, ColPrice, ColBeds, ColBaths, ColSqft}

// Listing is one property parsed from the search page or supplied statically.
// Values are never modified after creation; pass by value.
type Listing struct {
	Address string `json:"address" yaml:"address"`
	Price   int    `json:"price" yaml:"price"`
	Beds    int    `json:"beds" yaml:"beds"`
	Baths   int    `json:"baths" yaml:"baths"`
	Sqft    int    `json:"sqft" yaml:"sqft"`
}

// Field returns the value stored under a column name, or nil for an unknown column.
func (l Listing) Field(column string) any {
	switch column {
	case ColAddress:
		return l.Address
	case ColPrice:
		return l.Price
	case ColBeds:
		return l.Beds
	case ColBaths:
		return l.Baths
	case ColSqft:
		return l.Sqft
	}
	return nil
}

// ListingTable is an ordered set of rows sharing one column set.
// A nil Columns slice means the column set was never established, which is
// the case for a table tabulated from zero records.
type ListingTable struct {
	Columns []string
	Rows    []Listing
}

// NewListingTable builds a table over the canonical columns.
func NewListingTable(rows []Listing) ListingTable {
	return ListingTable{
		Columns: slices.Clone(ListingColumns),
		Rows:    slices.Clone(rows),
	}
}

// Len returns the number of rows.
func (t ListingTable) Len() int { return len(t.Rows) }

// HasColumns reports whether the column set is established.
func (t ListingTable) HasColumns() bool { return t.Columns != nil }

// Project returns a table over the same rows restricted to the given columns.
// Unknown columns are ignored; if none remain the column set is left unchanged.
func (t ListingTable) Project(columns ...string) ListingTable {
	var cols []string
	for _, c := range columns {
		if slices.Contains(ListingColumns, c) && !slices.Contains(cols, c) {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		cols = slices.Clone(t.Columns)
	}
	return ListingTable{Columns: cols, Rows: slices.Clone(t.Rows)}
}

// MarketSummary holds the computed statistics over a listing table.
type MarketSummary struct {
	TotalListings   int
	AveragePrice    float64
	MinPrice        int
	MaxPrice        int
	AvgPricePerSqft float64
	Largest         *Listing
	BestValue       []Listing
	ListingsByCity  map[string]int
}
