package services

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"zillow-scraper/models"
)

// listingRegexp matches one listing block as rendered in the search results:
//
//	<address ending in "ST 12345">
//	<any single line, e.g. the listing agent>
//	$<price>
//	<beds> bds<baths> ba<sqft> sqft
//
// The counts run into their unit labels without whitespace because that is
// how the page's innerText flattens the card's list items.
var listingRegexp = regexp.MustCompile(
	`([^\n]+[A-Z]{2} \d{5})\n.*\n\$(\d{1,3}(?:,\d{3})*)\n(\d+) bds(\d+) ba([\d,]+) sqft`)

// ParseListing parses a single listing block. The bool is false when the
// block does not have the expected shape.
func ParseListing(block string) (models.Listing, bool) {
	m := listingRegexp.FindStringSubmatch(block)
	if m == nil {
		return models.Listing{}, false
	}
	return listingFromMatch(m)
}

// Extract yields every listing found in the page text, in text order.
// Blocks that do not match are skipped. Each call scans the text afresh.
func Extract(text string) iter.Seq[models.Listing] {
	return func(yield func(models.Listing) bool) {
		rest := text
		for {
			loc := listingRegexp.FindStringSubmatchIndex(rest)
			if loc == nil {
				return
			}
			m := make([]string, len(loc)/2)
			for i := range m {
				m[i] = rest[loc[2*i]:loc[2*i+1]]
			}
			rest = rest[loc[1]:]

			l, ok := listingFromMatch(m)
			if !ok {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}

// ExtractAll collects Extract into a slice.
func ExtractAll(text string) []models.Listing {
	var out []models.Listing
	for l := range Extract(text) {
		out = append(out, l)
	}
	return out
}

func listingFromMatch(m []string) (models.Listing, bool) {
	price, err := parseGroupedInt(m[2])
	if err != nil {
		return models.Listing{}, false
	}
	beds, err := strconv.Atoi(m[3])
	if err != nil {
		return models.Listing{}, false
	}
	baths, err := strconv.Atoi(m[4])
	if err != nil {
		return models.Listing{}, false
	}
	sqft, err := parseGroupedInt(m[5])
	if err != nil {
		return models.Listing{}, false
	}

	return models.Listing{
		Address: strings.TrimSpace(m[1]),
		Price:   price,
		Beds:    beds,
		Baths:   baths,
		Sqft:    sqft,
	}, true
}

// parseGroupedInt parses comma-grouped decimal text such as "1,457".
func parseGroupedInt(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}
