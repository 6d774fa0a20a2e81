// Package alert applies the configured threshold rules to listings and
// arbitrage opportunities and renders the triggered alerts as a
// human-readable report.
package alert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

// NoAlerts is the sentinel report returned when both rules are disabled or
// nothing crossed a threshold.
const NoAlerts = "No alerts triggered."

// Config holds the two independent threshold rules. A threshold <= 0
// disables the corresponding rule.
type Config struct {
	// PriceBelow fires a price-drop alert for every listing priced at or
	// below it.
	PriceBelow float64
	// MarginAbove fires an arbitrage alert for every opportunity whose
	// margin is at or above it.
	MarginAbove float64
}

// Alert is one triggered rule, ready for delivery.
type Alert struct {
	Event   string // "price_drop" or "arbitrage"
	Message string
}

// Engine evaluates the threshold rules. Each listing and each opportunity is
// visited exactly once per Evaluate call, so no alert fires twice within one
// invocation.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// NewEngine creates an alert engine with the given thresholds.
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "alert_engine")),
	}
}

// Evaluate runs both rules and returns the triggered alerts in rule order:
// price-drop alerts over the listings first, then arbitrage alerts over the
// opportunities.
func (e *Engine) Evaluate(listings []domain.Listing, opps []domain.Opportunity) []Alert {
	var alerts []Alert

	if e.cfg.PriceBelow > 0 {
		for _, l := range listings {
			if l.Price <= e.cfg.PriceBelow {
				alerts = append(alerts, Alert{
					Event: "price_drop",
					Message: fmt.Sprintf("PRICE DROP: %s on %s: $%.2f (below $%.2f)",
						l.Title, l.Platform, l.Price, e.cfg.PriceBelow),
				})
			}
		}
	}

	if e.cfg.MarginAbove > 0 {
		for _, o := range opps {
			if o.Margin >= e.cfg.MarginAbove {
				alerts = append(alerts, Alert{
					Event: "arbitrage",
					Message: fmt.Sprintf("ARBITRAGE: Buy from %s ($%.2f) -> Sell on %s ($%.2f) -> Margin: %s",
						o.BuyFrom, o.BuyPrice, o.SellOn, o.SellPrice, o.MarginPercent),
				})
			}
		}
	}

	e.logger.Debug("alert evaluation complete",
		slog.Int("listings", len(listings)),
		slog.Int("opportunities", len(opps)),
		slog.Int("triggered", len(alerts)),
	)
	return alerts
}

// Report renders alerts as a multi-line message, or the NoAlerts sentinel
// when none fired.
func Report(alerts []Alert) string {
	if len(alerts) == 0 {
		return NoAlerts
	}
	lines := make([]string, len(alerts))
	for i, a := range alerts {
		lines[i] = a.Message
	}
	return strings.Join(lines, "\n")
}
