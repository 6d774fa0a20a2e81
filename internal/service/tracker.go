// Package service composes the listing source, analyzer, alert engine, and
// trend analyzer into the operations the CLI modes invoke.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alanyoungcy/pricetracker/internal/alert"
	"github.com/alanyoungcy/pricetracker/internal/arbitrage"
	"github.com/alanyoungcy/pricetracker/internal/domain"
	"github.com/alanyoungcy/pricetracker/internal/platform"
	"github.com/alanyoungcy/pricetracker/internal/report"
	"github.com/alanyoungcy/pricetracker/internal/trend"
)

// Tracker runs the price-tracking pipeline: listing retrieval, pairwise
// margin analysis, alert evaluation, and trend summarization. The analysis
// stages are synchronous; only the per-platform listing retrieval fans out.
type Tracker struct {
	source   domain.ListingSource
	history  domain.HistorySource
	registry *platform.Registry
	analyzer *arbitrage.Analyzer
	logger   *slog.Logger
}

// NewTracker creates a Tracker from its collaborators.
func NewTracker(
	source domain.ListingSource,
	history domain.HistorySource,
	registry *platform.Registry,
	analyzer *arbitrage.Analyzer,
	logger *slog.Logger,
) *Tracker {
	return &Tracker{
		source:   source,
		history:  history,
		registry: registry,
		analyzer: analyzer,
		logger:   logger.With(slog.String("component", "tracker")),
	}
}

// TrackRequest parameterizes one Track invocation.
type TrackRequest struct {
	Product   string
	Platforms []string
	Alerts    alert.Config
	SortBy    domain.SortKey
}

// CompareRequest parameterizes one Compare invocation.
type CompareRequest struct {
	Product   string
	Platforms []string
	SortBy    domain.SortKey
	MinRating float64
}

// HistoryRequest parameterizes one History invocation. An empty Platforms
// list means every registered platform.
type HistoryRequest struct {
	Product       string
	Platforms     []string
	Days          int
	TrendAnalysis bool
}

// Track searches the product on every valid requested platform, ranks all
// buy/sell opportunities, and evaluates the alert rules. Ranking runs only
// once the complete listing set is available; a failed search aborts the
// whole invocation.
func (t *Tracker) Track(ctx context.Context, req TrackRequest) (report.Report, []alert.Alert, error) {
	platforms, err := t.validPlatforms(req.Platforms)
	if err != nil {
		return report.Report{}, nil, err
	}

	listings, err := t.searchAll(ctx, req.Product, platforms)
	if err != nil {
		return report.Report{}, nil, err
	}

	opps := t.analyzer.Analyze(listings, arbitrage.Options{SortBy: req.SortBy})

	engine := alert.NewEngine(req.Alerts, t.logger)
	alerts := engine.Evaluate(listings, opps)

	rep := report.Report{
		Product:       req.Product,
		GeneratedAt:   time.Now(),
		Listings:      listings,
		Opportunities: opps,
		Alerts:        alert.Report(alerts),
	}
	return rep, alerts, nil
}

// Compare searches the product across platforms, drops listings below the
// minimum rating before pairing, ranks opportunities by the selected key,
// and sorts the surviving listings ascending by price.
func (t *Tracker) Compare(ctx context.Context, req CompareRequest) (report.Report, error) {
	platforms, err := t.validPlatforms(req.Platforms)
	if err != nil {
		return report.Report{}, err
	}

	listings, err := t.searchAll(ctx, req.Product, platforms)
	if err != nil {
		return report.Report{}, err
	}
	listings = arbitrage.FilterByRating(listings, req.MinRating)

	opps := t.analyzer.Analyze(listings, arbitrage.Options{SortBy: req.SortBy})

	sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price < listings[j].Price })

	return report.Report{
		Product:       req.Product,
		GeneratedAt:   time.Now(),
		Listings:      listings,
		Opportunities: opps,
	}, nil
}

// History builds one section per valid requested platform: the synthetic
// trailing series plus, when requested, its trend summary.
func (t *Tracker) History(ctx context.Context, req HistoryRequest) (report.HistoryReport, error) {
	requested := req.Platforms
	if len(requested) == 0 {
		requested = t.registry.IDs()
	}
	platforms, err := t.validPlatforms(requested)
	if err != nil {
		return report.HistoryReport{}, err
	}

	rep := report.HistoryReport{
		Product:     req.Product,
		Days:        req.Days,
		GeneratedAt: time.Now(),
	}
	for _, id := range platforms {
		series, err := t.history.History(ctx, req.Product, id, req.Days)
		if err != nil {
			return report.HistoryReport{}, fmt.Errorf("history %s: %w", id, err)
		}

		p, _ := t.registry.Lookup(id)
		sec := report.HistorySection{
			PlatformID:   id,
			PlatformName: p.Name,
			History:      series,
		}
		if req.TrendAnalysis && len(series) > 0 {
			summary := trend.Analyze(series)
			sec.Trend = &summary
		}
		rep.Sections = append(rep.Sections, sec)
	}
	return rep, nil
}

// validPlatforms filters the requested identifiers against the registry.
// Unknown names are silently dropped; an empty result is a configuration
// error.
func (t *Tracker) validPlatforms(requested []string) ([]string, error) {
	valid := t.registry.Filter(requested)
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w (available: %v)", domain.ErrNoValidPlatforms, t.registry.IDs())
	}
	if len(valid) < len(requested) {
		t.logger.Warn("dropped unknown platforms",
			slog.Int("requested", len(requested)),
			slog.Int("valid", len(valid)),
		)
	}
	return valid, nil
}

// searchAll fans the search out across platforms and concatenates the
// results in the order the platforms were requested. Any single failure
// cancels the remaining searches and is returned as-is; no partial listing
// set ever reaches the analyzer.
func (t *Tracker) searchAll(ctx context.Context, keyword string, platforms []string) ([]domain.Listing, error) {
	results := make([][]domain.Listing, len(platforms))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range platforms {
		i, id := i, id
		g.Go(func() error {
			listings, err := t.source.Search(gctx, keyword, id)
			if err != nil {
				return fmt.Errorf("search %s: %w", id, err)
			}
			results[i] = listings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Listing
	for _, r := range results {
		all = append(all, r...)
	}
	t.logger.Debug("search complete",
		slog.String("keyword", keyword),
		slog.Int("platforms", len(platforms)),
		slog.Int("listings", len(all)),
	)
	return all, nil
}
