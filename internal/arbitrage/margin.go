// Package arbitrage computes fee-aware buy/sell margins between platform
// listings and ranks the resulting opportunities.
package arbitrage

import "github.com/alanyoungcy/pricetracker/internal/platform"

// Calculator computes the net profitability of buying on one platform and
// selling on another, after both platforms' fees and a flat shipping cost.
// It is a pure function of its inputs; the registry and shipping cost are
// fixed at construction.
type Calculator struct {
	registry *platform.Registry
	shipping float64
}

// NewCalculator creates a Calculator using the given fee registry and flat
// shipping cost (applied once to the cost side of every pair).
func NewCalculator(registry *platform.Registry, shippingCost float64) *Calculator {
	return &Calculator{registry: registry, shipping: shippingCost}
}

// Margin returns the profit margin as a signed fraction of total cost:
//
//	total_cost = buy_price + buy_price*buy_fee + shipping
//	revenue    = sell_price - sell_price*sell_fee
//	margin     = (revenue - total_cost) / total_cost
//
// A zero total cost yields 0 rather than a division failure. The result is
// unbounded in both directions.
func (c *Calculator) Margin(buyPrice, sellPrice float64, buyPlatform, sellPlatform string) float64 {
	buyFee := buyPrice * c.registry.FeeRate(buyPlatform)
	sellFee := sellPrice * c.registry.FeeRate(sellPlatform)

	totalCost := buyPrice + buyFee + c.shipping
	revenue := sellPrice - sellFee

	if totalCost == 0 {
		return 0
	}
	return (revenue - totalCost) / totalCost
}
