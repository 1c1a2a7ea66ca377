package services

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"zillow-scraper/models"
	"zillow-scraper/utils"
)

func sampleTable() models.ListingTable {
	return models.NewListingTable([]models.Listing{
		{Address: "1 A St, Greer, SC 29650", Price: 200000, Beds: 3, Baths: 2, Sqft: 2000},
		{Address: "2 B St, Greer, SC 29650", Price: 150000, Beds: 2, Baths: 1, Sqft: 1500},
		{Address: "3 C St, Aiken, SC 29803", Price: 300000, Beds: 4, Baths: 3, Sqft: 1500},
		{Address: "4 D St, Aiken, SC 29803", Price: 0, Beds: 3, Baths: 2, Sqft: 3000},
		{Address: "no city here", Price: 100000, Beds: 2, Baths: 1, Sqft: 2000},
	})
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(sampleTable())
	if r.TotalListings != 5 {
		t.Errorf("TotalListings: got %d, want 5", r.TotalListings)
	}
}

func TestInsightPrices(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(sampleTable())
	wantAvg := 187500.0
	if r.AveragePrice != wantAvg {
		t.Errorf("AveragePrice: got %.2f, want %.2f", r.AveragePrice, wantAvg)
	}
	if r.MinPrice != 100000 {
		t.Errorf("MinPrice: got %d, want 100000", r.MinPrice)
	}
	if r.MaxPrice != 300000 {
		t.Errorf("MaxPrice: got %d, want 300000", r.MaxPrice)
	}
	// (100 + 100 + 200 + 50) / 4
	if r.AvgPricePerSqft != 112.5 {
		t.Errorf("AvgPricePerSqft: got %.2f, want 112.50", r.AvgPricePerSqft)
	}
}

func TestInsightLargest(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(sampleTable())
	if r.Largest == nil {
		t.Fatal("Largest should not be nil")
	}
	if r.Largest.Address != "4 D St, Aiken, SC 29803" {
		t.Errorf("Largest: got %q, want %q", r.Largest.Address, "4 D St, Aiken, SC 29803")
	}
}

func TestInsightBestValue(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(sampleTable())

	want := []string{"no city here", "1 A St, Greer, SC 29650", "2 B St, Greer, SC 29650", "3 C St, Aiken, SC 29803"}
	if len(r.BestValue) != len(want) {
		t.Fatalf("BestValue len: got %d, want %d", len(r.BestValue), len(want))
	}
	for i, l := range r.BestValue {
		if l.Address != want[i] {
			t.Errorf("BestValue[%d]: got %q, want %q", i, l.Address, want[i])
		}
	}
}

func TestInsightBestValueCapped(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(models.NewListingTable(models.StaticListings()))
	if len(r.BestValue) != 5 {
		t.Errorf("BestValue len: got %d, want 5", len(r.BestValue))
	}
	// $75,000 / 1,534 sqft
	if r.BestValue[0].Address != "76 Proud Hope Ln, Due West, SC 29639" {
		t.Errorf("BestValue[0]: got %q", r.BestValue[0].Address)
	}
}

func TestInsightCityGrouping(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(sampleTable())
	if r.ListingsByCity["Greer"] != 2 {
		t.Errorf("Greer count: got %d, want 2", r.ListingsByCity["Greer"])
	}
	if r.ListingsByCity["Aiken"] != 2 {
		t.Errorf("Aiken count: got %d, want 2", r.ListingsByCity["Aiken"])
	}
	if len(r.ListingsByCity) != 2 {
		t.Errorf("cities: got %v, want only Greer and Aiken", r.ListingsByCity)
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	r := svc.Generate(models.ListingTable{})
	if r.TotalListings != 0 {
		t.Errorf("expected 0 total listings for empty input")
	}
	if r.Largest != nil {
		t.Errorf("expected no largest listing for empty input")
	}
}

func TestInsightPrint(t *testing.T) {
	svc := NewInsightService(utils.Discard())
	var buf bytes.Buffer
	svc.Print(&buf, svc.Generate(sampleTable()))

	out := buf.String()
	for _, want := range []string{"MARKET SUMMARY", "$187,500", "$300,000", "4 D St, Aiken, SC 29803", "Greer"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print output missing %q", want)
		}
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"1234567890", 10, "1234567890"},
		{"12345678901", 10, "1234567..."},
		{"12 Peñasco Ñandú Ct", 10, "12 Peña..."},
		{"Ñandú", 4, "Ñ..."},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		if got != tt.want {
			t.Errorf("truncate(%q, %d): got %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) split a rune: %q", tt.in, tt.max, got)
		}
	}
}
