package services

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pterm/pterm"

	"zillow-scraper/models"
	"zillow-scraper/utils"
)

const bestValueCount = 5

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(t models.ListingTable) *models.MarketSummary {
	report := &models.MarketSummary{
		ListingsByCity: make(map[string]int),
	}

	if t.Len() == 0 {
		return report
	}

	report.TotalListings = t.Len()

	var priced []models.Listing
	var perSqft []models.Listing

	for i, l := range t.Rows {
		if l.Price > 0 {
			priced = append(priced, l)
		}
		if l.Price > 0 && l.Sqft > 0 {
			perSqft = append(perSqft, l)
		}
		if city := cityOf(l.Address); city != "" {
			report.ListingsByCity[city]++
		}
		if report.Largest == nil || l.Sqft > report.Largest.Sqft {
			report.Largest = &t.Rows[i]
		}
	}

	if len(priced) > 0 {
		report.MinPrice = priced[0].Price
		report.MaxPrice = priced[0].Price
		var total int
		for _, l := range priced {
			total += l.Price
			report.MinPrice = min(report.MinPrice, l.Price)
			report.MaxPrice = max(report.MaxPrice, l.Price)
		}
		report.AveragePrice = round2(float64(total) / float64(len(priced)))
	}

	if len(perSqft) > 0 {
		var sum float64
		for _, l := range perSqft {
			sum += pricePerSqft(l)
		}
		report.AvgPricePerSqft = round2(sum / float64(len(perSqft)))

		sort.SliceStable(perSqft, func(i, j int) bool {
			return pricePerSqft(perSqft[i]) < pricePerSqft(perSqft[j])
		})
		if len(perSqft) > bestValueCount {
			perSqft = perSqft[:bestValueCount]
		}
		report.BestValue = perSqft
	}

	s.logger.Debug("[insights] %d listings across %d cities", report.TotalListings, len(report.ListingsByCity))
	return report
}

func (s *InsightService) Print(w io.Writer, r *models.MarketSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)
	banner := pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold)
	heading := pterm.NewStyle(pterm.FgYellow, pterm.Bold)

	fmt.Fprintf(w, "\n%s\n", banner.Sprint(sep))
	fmt.Fprintf(w, "%s\n", banner.Sprint("  MARKET SUMMARY"))
	fmt.Fprintf(w, "%s\n\n", banner.Sprint(sep))

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Overview"))
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Total listings : %s\n", pterm.Bold.Sprint(r.TotalListings))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Price Statistics"))
	fmt.Fprintf(w, "  %s\n", thin)
	if r.AveragePrice > 0 {
		fmt.Fprintf(w, "  Average price    : %s\n", pterm.Green(money(r.AveragePrice)))
		fmt.Fprintf(w, "  Minimum price    : %s\n", pterm.Green(money(float64(r.MinPrice))))
		fmt.Fprintf(w, "  Maximum price    : %s\n", pterm.Green(money(float64(r.MaxPrice))))
		fmt.Fprintf(w, "  Avg price / sqft : %s\n", pterm.Green("$"+humanize.FormatFloat("#,###.##", r.AvgPricePerSqft)))
	} else {
		fmt.Fprintf(w, "  No price data available\n")
	}
	fmt.Fprintln(w)

	if r.Largest != nil {
		fmt.Fprintf(w, "%s\n", heading.Sprint("  Largest Home"))
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s\n", truncate(r.Largest.Address, 50))
		fmt.Fprintf(w, "  %d bd / %d ba, %s sqft at %s\n", r.Largest.Beds, r.Largest.Baths,
			humanize.Comma(int64(r.Largest.Sqft)), money(float64(r.Largest.Price)))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Best Value (lowest price per sqft)"))
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.BestValue) == 0 {
		fmt.Fprintf(w, "  No priced listings found\n")
	} else {
		for i, l := range r.BestValue {
			fmt.Fprintf(w, "  %s %-40s %s\n", pterm.Bold.Sprintf("%d.", i+1), truncate(l.Address, 38),
				pterm.LightGreen(fmt.Sprintf("$%.2f/sqft", pricePerSqft(l))))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", heading.Sprint("  Listings by City"))
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.ListingsByCity) == 0 {
		fmt.Fprintf(w, "  No city data\n")
	} else {
		type cityCount struct {
			city  string
			count int
		}
		var cities []cityCount
		for city, cnt := range r.ListingsByCity {
			cities = append(cities, cityCount{city, cnt})
		}
		sort.Slice(cities, func(i, j int) bool {
			if cities[i].count != cities[j].count {
				return cities[i].count > cities[j].count
			}
			return cities[i].city < cities[j].city
		})
		for _, cc := range cities {
			bar := strings.Repeat("█", cc.count)
			fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(cc.city, 28), bar, cc.count)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", banner.Sprint(sep))
}

// cityOf returns the city from an address of the form "street, city, ST 12345".
func cityOf(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 3 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

func pricePerSqft(l models.Listing) float64 {
	return float64(l.Price) / float64(l.Sqft)
}

func money(v float64) string {
	return "$" + humanize.Comma(int64(v+0.5))
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return text.Trim(s, max-3) + "..."
}
