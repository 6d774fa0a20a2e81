package report

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

func sampleReport() Report {
	return Report{
		Product:     "laptop",
		GeneratedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		Listings: []domain.Listing{
			{Title: "laptop", Platform: "amazon", Price: 1037.41, Seller: "mock_seller", Rating: 4.73, Condition: "New", URL: "https://amazon.com/product/laptop"},
			{Title: "laptop", Platform: "ebay", Price: 851.09, Seller: "mock_seller", Rating: 4.21, Condition: "New", URL: "https://ebay.com/product/laptop"},
		},
		Opportunities: []domain.Opportunity{
			{ID: "op-1", BuyFrom: "ebay", BuyPrice: 851.09, BuyRating: 4.21, SellOn: "amazon", SellPrice: 1037.41, SellRating: 4.73, Margin: -0.0972, MarginPercent: "-9.7%"},
		},
		Alerts: "No alerts triggered.",
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	rep := sampleReport()

	out, err := JSON(rep)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	// Every listing's price, platform, and rating must survive exactly; the
	// 2-decimal formatting is a markdown concern, not a serialization one.
	require.Len(t, parsed.Listings, len(rep.Listings))
	for i, l := range rep.Listings {
		assert.Equal(t, l.Platform, parsed.Listings[i].Platform)
		assert.Equal(t, l.Price, parsed.Listings[i].Price)
		assert.Equal(t, l.Rating, parsed.Listings[i].Rating)
	}

	require.Len(t, parsed.Opportunities, 1)
	assert.Equal(t, rep.Opportunities[0].Margin, parsed.Opportunities[0].Margin)
	assert.Equal(t, rep.Opportunities[0].MarginPercent, parsed.Opportunities[0].MarginPercent)
}

func TestJSON_FieldNames(t *testing.T) {
	out, err := JSON(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, `"products"`)
	assert.Contains(t, out, `"arbitrage_opportunities"`)
	assert.Contains(t, out, `"buy_from"`)
	assert.Contains(t, out, `"margin_percent"`)
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleReport())

	assert.Contains(t, out, "# Price Tracking Report")
	assert.Contains(t, out, "## Current Prices")
	assert.Contains(t, out, "| amazon | $1037.41 | mock_seller | 4.7/5 | New |")
	assert.Contains(t, out, "## Arbitrage Opportunities")
	assert.Contains(t, out, "| ebay | $851.09 | amazon | $1037.41 | -9.7% |")
	assert.Contains(t, out, "## Alerts")
	assert.Contains(t, out, "No alerts triggered.")
}

func TestMarkdown_NoAlertSection(t *testing.T) {
	rep := sampleReport()
	rep.Alerts = ""
	assert.NotContains(t, Markdown(rep), "## Alerts")
}

func TestCSV_RoundTrip(t *testing.T) {
	rep := sampleReport()

	out, err := CSV(rep)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + two listings

	assert.Equal(t, []string{"Platform", "Price", "Seller", "Rating"}, records[0])

	price, err := strconv.ParseFloat(records[1][1], 64)
	require.NoError(t, err)
	assert.Equal(t, rep.Listings[0].Price, price)

	rating, err := strconv.ParseFloat(records[1][3], 64)
	require.NoError(t, err)
	assert.Equal(t, rep.Listings[0].Rating, rating)
}

func TestOpportunitiesCSV(t *testing.T) {
	out, err := OpportunitiesCSV(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"Buy Platform", "Buy Price", "Sell Platform", "Sell Price", "Margin", "Margin %"}, records[0])
	assert.Equal(t, "ebay", records[1][0])
	assert.Equal(t, "-0.0972", records[1][4])
	assert.Equal(t, "-9.7%", records[1][5])
}

func sampleHistoryReport() HistoryReport {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]domain.PriceHistoryEntry, 12)
	for i := range entries {
		price := 100.0 + float64(i)
		entries[i] = domain.PriceHistoryEntry{
			Date:  base.AddDate(0, 0, i),
			Price: price,
			Low:   price * 0.95,
			High:  price * 1.05,
		}
	}
	return HistoryReport{
		Product:     "laptop",
		Days:        12,
		GeneratedAt: base,
		Sections: []HistorySection{
			{
				PlatformID:   "amazon",
				PlatformName: "Amazon",
				History:      entries,
				Trend: &domain.TrendSummary{
					Trend:          domain.TrendIncreasing,
					Direction:      domain.DirectionUpward,
					MinPrice:       100,
					MaxPrice:       111,
					AvgPrice:       105.5,
					PredictedPrice: 113.22,
					Volatility:     0.104,
				},
			},
		},
	}
}

func TestHistoryMarkdown(t *testing.T) {
	out := HistoryMarkdown(sampleHistoryReport())

	assert.Contains(t, out, "# Price History Report: laptop")
	assert.Contains(t, out, "Time Range: Last 12 days")
	assert.Contains(t, out, "## Amazon")
	assert.Contains(t, out, "**Trend:** Increasing (upward)")
	assert.Contains(t, out, "**Volatility:** 10.4%")
	assert.Contains(t, out, "**Predicted:** $113.22")

	// Only the trailing 10 entries are tabulated.
	assert.NotContains(t, out, "| 2025-06-01 |")
	assert.NotContains(t, out, "| 2025-06-02 |")
	assert.Contains(t, out, "| 2025-06-03 |")
	assert.Contains(t, out, "| 2025-06-12 |")
}

func TestHistoryCSV_IncludesFullSeries(t *testing.T) {
	out, err := HistoryCSV(sampleHistoryReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 13) // header + all 12 entries

	assert.Equal(t, []string{"Platform", "Date", "Price", "Low", "High"}, records[0])
	assert.Equal(t, "amazon", records[1][0])
	assert.Equal(t, "2025-06-01", records[1][1])
}

func TestBulkMarkdown(t *testing.T) {
	t.Run("empty report", func(t *testing.T) {
		out := BulkMarkdown(BulkReport{MarginThreshold: 0.20, GeneratedAt: time.Now()})
		assert.Contains(t, out, "Margin Threshold: 20%")
		assert.Contains(t, out, "No arbitrage opportunities found.")
	})

	t.Run("ranked opportunities", func(t *testing.T) {
		out := BulkMarkdown(BulkReport{
			MarginThreshold: 0.20,
			GeneratedAt:     time.Now(),
			Opportunities: []domain.Opportunity{
				{Product: "laptop", BuyFrom: "ebay", BuyPrice: 850, SellOn: "amazon", SellPrice: 1200, MarginPercent: "23.4%"},
			},
		})
		assert.Contains(t, out, "Found 1 arbitrage opportunities:")
		assert.Contains(t, out, "## laptop")
		assert.Contains(t, out, "- Buy from: ebay @ $850.00")
		assert.Contains(t, out, "- Sell on: amazon @ $1200.00")
		assert.Contains(t, out, "- Margin: 23.4%")
	})
}
