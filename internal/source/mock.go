// Package source provides listing and history source adapters. The mock
// source stands in for real marketplace API clients; it satisfies the same
// domain ports a production client would, so the analyzer, alert, and trend
// layers never know the difference.
package source

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

// Per-platform base prices for the simulated product data. Unknown platforms
// fall back to defaultBasePrice.
var basePrices = map[string]float64{
	"amazon":  1000.00,
	"ebay":    850.00,
	"walmart": 950.00,
	"bestbuy": 1050.00,
}

const defaultBasePrice = 1000.00

// priceJitter is the multiplicative noise band applied to base prices, both
// for current listings and for each day of generated history.
const priceJitter = 0.15

// Mock simulates marketplace search results and historical price series.
// Prices are drawn from a fixed per-platform base with uniform noise, so
// repeated calls return different observations, as a live marketplace would.
type Mock struct {
	rng *rand.Rand
	mu  sync.Mutex // rng is not safe for the concurrent per-platform fan-out
}

// NewMock creates a mock source from the given random source. Tests pass a
// seeded source for reproducibility.
func NewMock(rng *rand.Rand) *Mock {
	return &Mock{rng: rng}
}

// Search returns one simulated listing for the keyword on the platform.
func (m *Mock) Search(_ context.Context, keyword, platform string) ([]domain.Listing, error) {
	base, ok := basePrices[platform]
	if !ok {
		base = defaultBasePrice
	}

	m.mu.Lock()
	price := base * m.uniform(1-priceJitter, 1+priceJitter)
	rating := m.uniform(4.0, 5.0)
	m.mu.Unlock()

	return []domain.Listing{
		{
			Title:     keyword,
			Platform:  platform,
			Price:     round2(price),
			Seller:    "mock_seller",
			Rating:    rating,
			Condition: "New",
			URL:       fmt.Sprintf("https://%s.com/product/%s", platform, keyword),
		},
	}, nil
}

// History generates a synthetic trailing series of days entries ending
// yesterday, in ascending date order. Each day's price is the product's
// current price with independent noise in the jitter band; low/high bands
// sit 5% below and above the day's price. An empty search result yields an
// empty series.
func (m *Mock) History(ctx context.Context, keyword, platform string, days int) ([]domain.PriceHistoryEntry, error) {
	current, err := m.Search(ctx, keyword, platform)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, nil
	}
	base := current[0].Price

	m.mu.Lock()
	defer m.mu.Unlock()

	now := nowFunc()
	history := make([]domain.PriceHistoryEntry, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - i))
		price := base * (1 + m.uniform(-priceJitter, priceJitter))
		history = append(history, domain.PriceHistoryEntry{
			Date:  date,
			Price: round2(price),
			Low:   round2(price * 0.95),
			High:  round2(price * 1.05),
		})
	}
	return history, nil
}

// uniform returns a random float64 in [lo, hi). The caller must hold m.mu.
func (m *Mock) uniform(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
