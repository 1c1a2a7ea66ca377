package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"zillow-scraper/models"
)

// TableRenderer draws a rounded console table with grouped numbers.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, t models.ListingTable) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetOutputMirror(w)

	cols := columnsOf(t)

	header := table.Row{"#"}
	var configs []table.ColumnConfig
	for i, c := range cols {
		header = append(header, c)
		if c != models.ColAddress {
			configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for i, l := range t.Rows {
		row := table.Row{i + 1}
		for _, c := range cols {
			row = append(row, pretty(c, l.Field(c)))
		}
		tw.AppendRow(row)
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d listings", t.Len())})

	tw.Render()
	return nil
}

func pretty(column string, v any) any {
	n, ok := v.(int)
	if !ok {
		return v
	}
	switch column {
	case models.ColPrice:
		return "$" + humanize.Comma(int64(n))
	case models.ColSqft:
		return humanize.Comma(int64(n))
	}
	return n
}
