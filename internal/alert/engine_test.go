package alert

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

func testEngine(cfg Config) *Engine {
	return NewEngine(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEngine_PriceDropRule(t *testing.T) {
	listings := []domain.Listing{
		{Title: "widget", Platform: "amazon", Price: 100},
		{Title: "widget", Platform: "ebay", Price: 50},
	}

	e := testEngine(Config{PriceBelow: 60})
	alerts := e.Evaluate(listings, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, "price_drop", alerts[0].Event)
	assert.Contains(t, alerts[0].Message, "widget")
	assert.Contains(t, alerts[0].Message, "ebay")
	assert.Contains(t, alerts[0].Message, "$50.00")
}

func TestEngine_PriceDropFloorIsInclusive(t *testing.T) {
	listings := []domain.Listing{
		{Title: "widget", Platform: "amazon", Price: 60},
	}

	e := testEngine(Config{PriceBelow: 60})
	assert.Len(t, e.Evaluate(listings, nil), 1)
}

func TestEngine_MarginRule(t *testing.T) {
	opps := []domain.Opportunity{
		{BuyFrom: "ebay", BuyPrice: 850, SellOn: "amazon", SellPrice: 1000, Margin: 0.25, MarginPercent: "25.0%"},
		{BuyFrom: "amazon", BuyPrice: 1000, SellOn: "ebay", SellPrice: 850, Margin: -0.36, MarginPercent: "-36.0%"},
	}

	e := testEngine(Config{MarginAbove: 0.20})
	alerts := e.Evaluate(nil, opps)

	require.Len(t, alerts, 1)
	assert.Equal(t, "arbitrage", alerts[0].Event)
	assert.Contains(t, alerts[0].Message, "Buy from ebay")
	assert.Contains(t, alerts[0].Message, "Sell on amazon")
	assert.Contains(t, alerts[0].Message, "25.0%")
}

func TestEngine_DisabledRules(t *testing.T) {
	listings := []domain.Listing{{Title: "widget", Platform: "amazon", Price: 1}}
	opps := []domain.Opportunity{{Margin: 99}}

	// Zero thresholds disable both rules entirely.
	e := testEngine(Config{})
	assert.Empty(t, e.Evaluate(listings, opps))
}

func TestEngine_EachItemVisitedOnce(t *testing.T) {
	listings := []domain.Listing{
		{Title: "widget", Platform: "amazon", Price: 10},
		{Title: "widget", Platform: "ebay", Price: 20},
	}
	opps := []domain.Opportunity{
		{Margin: 0.5, MarginPercent: "50.0%"},
		{Margin: 0.6, MarginPercent: "60.0%"},
	}

	e := testEngine(Config{PriceBelow: 100, MarginAbove: 0.1})
	alerts := e.Evaluate(listings, opps)

	// One alert per listing plus one per opportunity, never more.
	require.Len(t, alerts, 4)
	assert.Equal(t, "price_drop", alerts[0].Event)
	assert.Equal(t, "price_drop", alerts[1].Event)
	assert.Equal(t, "arbitrage", alerts[2].Event)
	assert.Equal(t, "arbitrage", alerts[3].Event)
}

func TestReport(t *testing.T) {
	t.Run("no alerts yields sentinel", func(t *testing.T) {
		assert.Equal(t, NoAlerts, Report(nil))
	})

	t.Run("alerts join into one message per line", func(t *testing.T) {
		out := Report([]Alert{
			{Event: "price_drop", Message: "first"},
			{Event: "arbitrage", Message: "second"},
		})
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "first", lines[0])
		assert.Equal(t, "second", lines[1])
	})
}
