package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"zillow-scraper/models"
)

// CSVRenderer writes the table as CSV with a header row.
type CSVRenderer struct{}

func (CSVRenderer) Render(w io.Writer, t models.ListingTable) error {
	cw := csv.NewWriter(w)
	cols := columnsOf(t)

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	row := make([]string, len(cols))
	for _, l := range t.Rows {
		for i, c := range cols {
			row[i] = plain(l.Field(c))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
