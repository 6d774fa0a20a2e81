package report

import (
	"fmt"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05"

// historyTableRows caps how many trailing entries the markdown history table
// shows; the full series still goes to JSON and CSV.
const historyTableRows = 10

// Markdown renders a track/compare report: current prices, ranked
// opportunities, and the alert section when alert text is present.
func Markdown(rep Report) string {
	var b strings.Builder

	b.WriteString("# Price Tracking Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", rep.GeneratedAt.Format(timeLayout))

	b.WriteString("## Current Prices\n\n")
	b.WriteString("| Platform | Price | Seller | Rating | Condition |\n")
	b.WriteString("|----------|-------|--------|--------|-----------|\n")
	for _, l := range rep.Listings {
		fmt.Fprintf(&b, "| %s | $%.2f | %s | %.1f/5 | %s |\n",
			l.Platform, l.Price, l.Seller, l.Rating, l.Condition)
	}

	b.WriteString("\n## Arbitrage Opportunities\n\n")
	b.WriteString("| Buy From | Buy Price | Sell On | Sell Price | Margin |\n")
	b.WriteString("|----------|-----------|---------|------------|--------|\n")
	for _, o := range rep.Opportunities {
		fmt.Fprintf(&b, "| %s | $%.2f | %s | $%.2f | %s |\n",
			o.BuyFrom, o.BuyPrice, o.SellOn, o.SellPrice, o.MarginPercent)
	}

	if rep.Alerts != "" {
		b.WriteString("\n## Alerts\n\n")
		b.WriteString(rep.Alerts)
		b.WriteString("\n")
	}

	return b.String()
}

// HistoryMarkdown renders per-platform price history tables with the
// optional trend analysis block above each table. Only the trailing
// historyTableRows entries are tabulated.
func HistoryMarkdown(rep HistoryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Price History Report: %s\n\n", rep.Product)
	fmt.Fprintf(&b, "Time Range: Last %d days\n", rep.Days)
	fmt.Fprintf(&b, "Generated: %s\n\n", rep.GeneratedAt.Format(timeLayout))

	for _, sec := range rep.Sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.PlatformName)

		if t := sec.Trend; t != nil {
			fmt.Fprintf(&b, "**Trend:** %s (%s)\n", titleCase(string(t.Trend)), t.Direction)
			fmt.Fprintf(&b, "**Price Range:** $%.2f - $%.2f\n", t.MinPrice, t.MaxPrice)
			fmt.Fprintf(&b, "**Average:** $%.2f\n", t.AvgPrice)
			fmt.Fprintf(&b, "**Volatility:** %.1f%%\n", t.Volatility*100)
			fmt.Fprintf(&b, "**Predicted:** $%.2f\n\n", t.PredictedPrice)
		}

		b.WriteString("| Date | Price | Low | High |\n")
		b.WriteString("|------|-------|-----|------|\n")
		entries := sec.History
		if len(entries) > historyTableRows {
			entries = entries[len(entries)-historyTableRows:]
		}
		for _, e := range entries {
			fmt.Fprintf(&b, "| %s | $%.2f | $%.2f | $%.2f |\n",
				e.Date.Format("2006-01-02"), e.Price, e.Low, e.High)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// titleCase upper-cases the first letter of an ASCII word like "increasing".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BulkMarkdown renders the bulk-monitor report as a margin-ranked list of
// qualifying opportunities grouped under their product names.
func BulkMarkdown(rep BulkReport) string {
	var b strings.Builder

	b.WriteString("# Bulk Price Monitoring Report\n\n")
	fmt.Fprintf(&b, "Margin Threshold: %.0f%%\n", rep.MarginThreshold*100)
	fmt.Fprintf(&b, "Generated: %s\n\n", rep.GeneratedAt.Format(timeLayout))

	if len(rep.Opportunities) == 0 {
		b.WriteString("No arbitrage opportunities found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d arbitrage opportunities:\n\n", len(rep.Opportunities))
	for _, o := range rep.Opportunities {
		fmt.Fprintf(&b, "## %s\n", o.Product)
		fmt.Fprintf(&b, "- Buy from: %s @ $%.2f\n", o.BuyFrom, o.BuyPrice)
		fmt.Fprintf(&b, "- Sell on: %s @ $%.2f\n", o.SellOn, o.SellPrice)
		fmt.Fprintf(&b, "- Margin: %s\n\n", o.MarginPercent)
	}

	return b.String()
}
