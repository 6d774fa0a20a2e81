package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// CSV renders a track report's listings as CSV. Numeric fields use the
// shortest exact representation so a parse of the output reproduces the
// original values.
func CSV(rep Report) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"Platform", "Price", "Seller", "Rating"}); err != nil {
		return "", fmt.Errorf("report: write csv header: %w", err)
	}
	for _, l := range rep.Listings {
		rec := []string{l.Platform, formatFloat(l.Price), l.Seller, formatFloat(l.Rating)}
		if err := w.Write(rec); err != nil {
			return "", fmt.Errorf("report: write csv row: %w", err)
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// OpportunitiesCSV renders a compare report's opportunities as CSV, one row
// per ranked pair.
func OpportunitiesCSV(rep Report) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{"Buy Platform", "Buy Price", "Sell Platform", "Sell Price", "Margin", "Margin %"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("report: write csv header: %w", err)
	}
	for _, o := range rep.Opportunities {
		rec := []string{
			o.BuyFrom,
			formatFloat(o.BuyPrice),
			o.SellOn,
			formatFloat(o.SellPrice),
			strconv.FormatFloat(o.Margin, 'f', 4, 64),
			o.MarginPercent,
		}
		if err := w.Write(rec); err != nil {
			return "", fmt.Errorf("report: write csv row: %w", err)
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// HistoryCSV renders every platform's full series as CSV rows.
func HistoryCSV(rep HistoryReport) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"Platform", "Date", "Price", "Low", "High"}); err != nil {
		return "", fmt.Errorf("report: write csv header: %w", err)
	}
	for _, sec := range rep.Sections {
		for _, e := range sec.History {
			rec := []string{
				sec.PlatformID,
				e.Date.Format("2006-01-02"),
				formatFloat(e.Price),
				formatFloat(e.Low),
				formatFloat(e.High),
			}
			if err := w.Write(rec); err != nil {
				return "", fmt.Errorf("report: write csv row: %w", err)
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
