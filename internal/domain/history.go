package domain

import "time"

// PriceHistoryEntry is one day of a product's price series, with low/high
// bands derived as 5% below and above the day's price. Entries in a series
// are ordered by ascending date with no duplicate days.
type PriceHistoryEntry struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
	Low   float64   `json:"low"`
	High  float64   `json:"high"`
}

// Trend classifies the net direction of a price series over its window.
type Trend string

const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// Direction values reported alongside a trend classification.
const (
	DirectionUpward   = "upward"
	DirectionDownward = "downward"
	DirectionStable   = "stable"
	DirectionUnknown  = "unknown"
)

// TrendSummary is the derived analysis of one price series: classification,
// summary statistics, a single-step heuristic prediction, and a volatility
// ratio of (max - min) / average. The prediction is illustrative, not a
// forecast to trade on.
type TrendSummary struct {
	Trend          Trend   `json:"trend"`
	Direction      string  `json:"direction"`
	FirstPrice     float64 `json:"first_price,omitempty"`
	LastPrice      float64 `json:"last_price,omitempty"`
	AvgPrice       float64 `json:"avg_price,omitempty"`
	MinPrice       float64 `json:"min_price,omitempty"`
	MaxPrice       float64 `json:"max_price,omitempty"`
	PredictedPrice float64 `json:"predicted_price,omitempty"`
	Volatility     float64 `json:"volatility,omitempty"`
}
