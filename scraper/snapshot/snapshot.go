// Package snapshot reads a saved listings page from disk, for offline runs.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockElements start and end a line when flattened. List items are left
// inline because the search cards render their bds/ba/sqft items on one line.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tr": true,
	"ul": true,
}

var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"svg": true, "head": true,
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Source serves page text from a file. HTML files are flattened to one line
// per block element; anything else is returned as plain text.
type Source struct {
	Path string
}

// New returns a Source reading path.
func New(path string) *Source {
	return &Source{Path: path}
}

// PageText reads and flattens the snapshot.
func (s *Source) PageText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("snapshot: read %q: %w", s.Path, err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".html", ".htm":
		text, err = FlattenHTML(raw)
		if err != nil {
			return "", fmt.Errorf("snapshot: parse %q: %w", s.Path, err)
		}
	default:
		text = strings.ReplaceAll(string(raw), "\r\n", "\n")
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("snapshot: %q has no text", s.Path)
	}
	return text, nil
}

// FlattenHTML approximates the browser's innerText for the document body.
func FlattenHTML(raw []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	walk(doc.Find("body"), &b)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func walk(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text":
			b.WriteString(lineBreaks.Replace(c.Text()))
		case name == "br":
			b.WriteByte('\n')
		case skippedElements[name]:
		case blockElements[name]:
			b.WriteByte('\n')
			walk(c, b)
			b.WriteByte('\n')
		default:
			walk(c, b)
		}
	})
}
