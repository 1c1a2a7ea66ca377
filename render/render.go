package render

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"zillow-scraper/models"
)

// Renderer is the interface any output format must satisfy.
type Renderer interface {
	Render(w io.Writer, t models.ListingTable) error
}

// Formats lists the accepted output format names.
var Formats = []string{"table", "csv", "json", "yaml"}

// New returns the renderer for a format name.
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table", "":
		return &TableRenderer{}, nil
	case "csv":
		return &CSVRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "yaml", "yml":
		return &YAMLRenderer{}, nil
	}
	return nil, fmt.Errorf("render: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// columnsOf falls back to the canonical columns for a table whose column set
// was never established.
func columnsOf(t models.ListingTable) []string {
	if t.HasColumns() {
		return t.Columns
	}
	return slices.Clone(models.ListingColumns)
}

// plain formats a field without grouping, for machine-readable output.
func plain(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
