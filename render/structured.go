package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"zillow-scraper/models"
)

// JSONRenderer writes an array with one object per row, keys in column order.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, t models.ListingTable) error {
	bw := bufio.NewWriter(w)
	cols := columnsOf(t)

	if t.Len() == 0 {
		bw.WriteString("[]\n")
		return bw.Flush()
	}

	bw.WriteString("[\n")
	for i, l := range t.Rows {
		bw.WriteString("  {")
		for j, c := range cols {
			if j > 0 {
				bw.WriteByte(',')
			}
			key, _ := json.Marshal(c)
			val, err := json.Marshal(l.Field(c))
			if err != nil {
				return fmt.Errorf("json: encode %s: %w", c, err)
			}
			bw.Write(key)
			bw.WriteByte(':')
			bw.Write(val)
		}
		bw.WriteByte('}')
		if i < t.Len()-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

// YAMLRenderer writes a sequence of mappings, keys in column order.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, t models.ListingTable) error {
	cols := columnsOf(t)

	docs := make([]yaml.MapSlice, 0, t.Len())
	for _, l := range t.Rows {
		item := make(yaml.MapSlice, 0, len(cols))
		for _, c := range cols {
			item = append(item, yaml.MapItem{Key: c, Value: l.Field(c)})
		}
		docs = append(docs, item)
	}

	out, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("yaml: encode: %w", err)
	}
	_, err = w.Write(out)
	return err
}
