// Package trend classifies the direction of a price series and produces a
// single-step heuristic prediction.
package trend

import (
	"github.com/alanyoungcy/pricetracker/internal/domain"
)

const (
	// upCutoff and downCutoff are the last/first price ratios beyond which a
	// series counts as increasing or decreasing; between them it is stable.
	upCutoff   = 1.05
	downCutoff = 0.95

	// growthFactor and declineFactor extrapolate the next price from the
	// last observation. A stable series predicts mean reversion instead.
	growthFactor  = 1.02
	declineFactor = 0.98
)

// Analyze classifies a chronological (oldest first) price series and returns
// its summary statistics, prediction, and volatility ratio. It is a pure
// function of the input: fewer than two entries yields an insufficient_data
// summary with no prediction, every other input yields a full summary. The
// classification compares only the last price against the first; the
// intermediate shape of the series does not matter.
func Analyze(history []domain.PriceHistoryEntry) domain.TrendSummary {
	if len(history) < 2 {
		return domain.TrendSummary{
			Trend:     domain.TrendInsufficientData,
			Direction: domain.DirectionUnknown,
		}
	}

	first := history[0].Price
	last := history[len(history)-1].Price

	var sum float64
	min, max := history[0].Price, history[0].Price
	for _, e := range history {
		sum += e.Price
		if e.Price < min {
			min = e.Price
		}
		if e.Price > max {
			max = e.Price
		}
	}
	avg := sum / float64(len(history))

	var (
		classification domain.Trend
		direction      string
		predicted      float64
	)
	switch {
	case last > first*upCutoff:
		classification = domain.TrendIncreasing
		direction = domain.DirectionUpward
		predicted = last * growthFactor
	case last < first*downCutoff:
		classification = domain.TrendDecreasing
		direction = domain.DirectionDownward
		predicted = last * declineFactor
	default:
		classification = domain.TrendStable
		direction = domain.DirectionStable
		predicted = avg // mean reversion
	}

	var volatility float64
	if avg != 0 {
		volatility = (max - min) / avg
	}

	return domain.TrendSummary{
		Trend:          classification,
		Direction:      direction,
		FirstPrice:     first,
		LastPrice:      last,
		AvgPrice:       avg,
		MinPrice:       min,
		MaxPrice:       max,
		PredictedPrice: predicted,
		Volatility:     volatility,
	}
}
