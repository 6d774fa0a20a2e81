package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

func series(prices ...float64) []domain.PriceHistoryEntry {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.PriceHistoryEntry, len(prices))
	for i, p := range prices {
		out[i] = domain.PriceHistoryEntry{
			Date:  base.AddDate(0, 0, i),
			Price: p,
			Low:   p * 0.95,
			High:  p * 1.05,
		}
	}
	return out
}

func TestAnalyze_Classification(t *testing.T) {
	tests := []struct {
		name          string
		prices        []float64
		wantTrend     domain.Trend
		wantDirection string
	}{
		{"empty series", nil, domain.TrendInsufficientData, domain.DirectionUnknown},
		{"single entry", []float64{100}, domain.TrendInsufficientData, domain.DirectionUnknown},
		{"clear growth", []float64{100, 105, 120}, domain.TrendIncreasing, domain.DirectionUpward},
		{"clear decline", []float64{100, 95, 80}, domain.TrendDecreasing, domain.DirectionDownward},
		{"flat series", []float64{100, 102, 101}, domain.TrendStable, domain.DirectionStable},
		{"exactly +5 percent is still stable", []float64{100, 105}, domain.TrendStable, domain.DirectionStable},
		{"exactly -5 percent is still stable", []float64{100, 95}, domain.TrendStable, domain.DirectionStable},
		{"dip in the middle does not matter", []float64{100, 10, 120}, domain.TrendIncreasing, domain.DirectionUpward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(series(tt.prices...))
			assert.Equal(t, tt.wantTrend, got.Trend)
			assert.Equal(t, tt.wantDirection, got.Direction)
		})
	}
}

func TestAnalyze_ScaleInvariance(t *testing.T) {
	// Scaling the whole series by a constant must not change the
	// classification: the cutoffs compare last/first ratios.
	base := []float64{100, 103, 111}
	for _, k := range []float64{0.5, 1, 2, 250} {
		scaled := make([]float64, len(base))
		for i, p := range base {
			scaled[i] = p * k
		}
		got := Analyze(series(scaled...))
		assert.Equal(t, domain.TrendIncreasing, got.Trend, "scale factor %g", k)
	}
}

func TestAnalyze_Prediction(t *testing.T) {
	t.Run("increasing predicts two percent growth", func(t *testing.T) {
		got := Analyze(series(100, 120))
		assert.InDelta(t, 120*1.02, got.PredictedPrice, 1e-9)
	})

	t.Run("decreasing predicts two percent decline", func(t *testing.T) {
		got := Analyze(series(100, 80))
		assert.InDelta(t, 80*0.98, got.PredictedPrice, 1e-9)
	})

	t.Run("stable predicts the series mean", func(t *testing.T) {
		got := Analyze(series(100, 104, 102))
		assert.InDelta(t, (100.0+104.0+102.0)/3.0, got.PredictedPrice, 1e-9)
	})

	t.Run("insufficient data predicts nothing", func(t *testing.T) {
		got := Analyze(series(100))
		assert.Zero(t, got.PredictedPrice)
	})
}

func TestAnalyze_Statistics(t *testing.T) {
	got := Analyze(series(100, 80, 120, 104))

	assert.Equal(t, 100.0, got.FirstPrice)
	assert.Equal(t, 104.0, got.LastPrice)
	assert.Equal(t, 80.0, got.MinPrice)
	assert.Equal(t, 120.0, got.MaxPrice)
	assert.InDelta(t, 101.0, got.AvgPrice, 1e-9)
	assert.InDelta(t, (120.0-80.0)/101.0, got.Volatility, 1e-9)
}

func TestAnalyze_IsPure(t *testing.T) {
	input := series(100, 90, 110)
	before := make([]domain.PriceHistoryEntry, len(input))
	copy(before, input)

	first := Analyze(input)
	second := Analyze(input)

	assert.Equal(t, first, second)
	assert.Equal(t, before, input) // input untouched
}
