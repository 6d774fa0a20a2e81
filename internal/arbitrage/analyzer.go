package arbitrage

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

// Options controls listing filtering and opportunity ranking.
type Options struct {
	// SortBy selects the descending ranking key. Defaults to margin.
	SortBy domain.SortKey
	// MinRating excludes listings rated below it from both the buy and the
	// sell side before pairing. 0 disables the filter.
	MinRating float64
}

// Analyzer enumerates buy/sell opportunities across a listing sequence.
type Analyzer struct {
	calc   *Calculator
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer using the given margin calculator.
func NewAnalyzer(calc *Calculator, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		calc:   calc,
		logger: logger.With(slog.String("component", "arb_analyzer")),
	}
}

// Analyze generates one opportunity for every ordered pair (i, j), i != j,
// of the listing sequence, treating listing i as the buy side and listing j
// as the sell side, then sorts descending by the selected key. The
// enumeration is over index pairs, not platform pairs: two listings on the
// same platform still form opportunities. The sort is stable, so equal-key
// opportunities keep their enumeration order.
//
// Negative-margin opportunities are included; callers that only want
// qualifying ones apply FilterByMargin afterwards.
func (a *Analyzer) Analyze(listings []domain.Listing, opts Options) []domain.Opportunity {
	if opts.MinRating > 0 {
		listings = FilterByRating(listings, opts.MinRating)
	}

	n := len(listings)
	if n < 2 {
		return nil
	}

	opps := make([]domain.Opportunity, 0, n*(n-1))
	for i, buy := range listings {
		for j, sell := range listings {
			if i == j {
				continue
			}
			margin := a.calc.Margin(buy.Price, sell.Price, buy.Platform, sell.Platform)
			opps = append(opps, domain.Opportunity{
				ID:            uuid.Must(uuid.NewRandom()).String(),
				Product:       buy.Title,
				BuyFrom:       buy.Platform,
				BuyPrice:      buy.Price,
				BuyRating:     buy.Rating,
				SellOn:        sell.Platform,
				SellPrice:     sell.Price,
				SellRating:    sell.Rating,
				Margin:        margin,
				MarginPercent: FormatMarginPercent(margin),
			})
		}
	}

	Sort(opps, opts.SortBy)

	a.logger.Debug("arbitrage analysis complete",
		slog.Int("listings", n),
		slog.Int("opportunities", len(opps)),
		slog.String("sort_by", string(opts.SortBy)),
	)
	return opps
}

// Sort orders opportunities descending by the given key, stably. An unknown
// or empty key falls back to margin.
func Sort(opps []domain.Opportunity, key domain.SortKey) {
	var less func(a, b domain.Opportunity) bool
	switch key {
	case domain.SortByPrice:
		less = func(a, b domain.Opportunity) bool { return a.BuyPrice > b.BuyPrice }
	case domain.SortByRating:
		less = func(a, b domain.Opportunity) bool { return a.BuyRating > b.BuyRating }
	default:
		less = func(a, b domain.Opportunity) bool { return a.Margin > b.Margin }
	}
	sort.SliceStable(opps, func(i, j int) bool { return less(opps[i], opps[j]) })
}

// FilterByRating returns the listings rated at or above min, preserving
// order.
func FilterByRating(listings []domain.Listing, min float64) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Rating >= min {
			out = append(out, l)
		}
	}
	return out
}

// FilterByMargin returns the opportunities whose margin is at or above
// floor, preserving order.
func FilterByMargin(opps []domain.Opportunity, floor float64) []domain.Opportunity {
	out := make([]domain.Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.Margin >= floor {
			out = append(out, o)
		}
	}
	return out
}

// FormatMarginPercent renders a margin fraction as the percentage string
// used throughout reports and alerts, e.g. 0.157 -> "15.7%".
func FormatMarginPercent(margin float64) string {
	return fmt.Sprintf("%.1f%%", margin*100)
}
