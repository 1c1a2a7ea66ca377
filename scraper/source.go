// Package scraper defines where listing page text comes from.
package scraper

import "context"

// PageSource supplies the fully rendered text of a listings page, one visual
// line per text line. Implementations must return an error rather than empty
// or partial text when the page could not be obtained.
type PageSource interface {
	PageText(ctx context.Context) (string, error)
}
