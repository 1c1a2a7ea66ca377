package services

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"zillow-scraper/models"
)

// ErrSchemaMismatch is returned when two tables with different column sets
// are combined.
var ErrSchemaMismatch = errors.New("listing tables have different columns")

// Tabulate collects listings into a table, keeping encounter order. An empty
// sequence produces a table with no rows and no column set.
func Tabulate(seq iter.Seq[models.Listing]) models.ListingTable {
	rows := slices.Collect(seq)
	if len(rows) == 0 {
		return models.ListingTable{}
	}
	return models.ListingTable{
		Columns: slices.Clone(models.ListingColumns),
		Rows:    rows,
	}
}

// Aggregate returns the rows of a followed by the rows of b. A table without
// a column set is compatible with any other; otherwise the column sets must
// be identical.
func Aggregate(a, b models.ListingTable) (models.ListingTable, error) {
	if a.HasColumns() && b.HasColumns() && !slices.Equal(a.Columns, b.Columns) {
		return models.ListingTable{}, fmt.Errorf("aggregate: %w: %v vs %v", ErrSchemaMismatch, a.Columns, b.Columns)
	}

	cols := a.Columns
	if !a.HasColumns() {
		cols = b.Columns
	}

	rows := make([]models.Listing, 0, a.Len()+b.Len())
	rows = append(rows, a.Rows...)
	rows = append(rows, b.Rows...)

	return models.ListingTable{Columns: slices.Clone(cols), Rows: rows}, nil
}
