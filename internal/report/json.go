package report

import (
	"encoding/json"
	"fmt"
)

// JSON renders a track/compare report as indented JSON. Field names are
// stable: listings appear under "products" and opportunities under
// "arbitrage_opportunities". Prices, margins, and ratings round-trip exactly
// because they are marshalled as-is rather than pre-formatted.
func JSON(rep Report) (string, error) {
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal json: %w", err)
	}
	return string(out), nil
}

// HistoryJSON renders a history report as indented JSON.
func HistoryJSON(rep HistoryReport) (string, error) {
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal history json: %w", err)
	}
	return string(out), nil
}

// BulkJSON renders a bulk-monitor report as indented JSON.
func BulkJSON(rep BulkReport) (string, error) {
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal bulk json: %w", err)
	}
	return string(out), nil
}
