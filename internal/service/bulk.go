package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alanyoungcy/pricetracker/internal/alert"
	"github.com/alanyoungcy/pricetracker/internal/arbitrage"
	"github.com/alanyoungcy/pricetracker/internal/domain"
	"github.com/alanyoungcy/pricetracker/internal/report"
)

// MonitorTarget is one row of the bulk-monitor CSV: a product, the platforms
// to watch it on, and its per-product alert thresholds.
type MonitorTarget struct {
	Product     string
	Platforms   []string
	AlertBelow  float64
	AlertMargin float64
}

// LoadTargets parses the bulk-monitor CSV. The file must have a header row
// naming at least the "product" and "platforms" columns; "alert_below" and
// "alert_margin" are optional. A row missing a required field is a
// configuration error.
func LoadTargets(path string) ([]MonitorTarget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bulk: open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("bulk: read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"product", "platforms"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("bulk: csv missing required column %q", required)
		}
	}

	var targets []MonitorTarget
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bulk: read csv: %w", err)
		}
		line++

		t := MonitorTarget{
			Product: strings.TrimSpace(field(rec, col, "product")),
		}
		for _, p := range strings.Split(field(rec, col, "platforms"), ",") {
			if p = strings.TrimSpace(p); p != "" {
				t.Platforms = append(t.Platforms, p)
			}
		}
		if t.Product == "" || len(t.Platforms) == 0 {
			return nil, fmt.Errorf("bulk: csv line %d: product and platforms are required", line)
		}
		if v := field(rec, col, "alert_below"); v != "" {
			if t.AlertBelow, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("bulk: csv line %d: invalid alert_below %q", line, v)
			}
		}
		if v := field(rec, col, "alert_margin"); v != "" {
			if t.AlertMargin, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, fmt.Errorf("bulk: csv line %d: invalid alert_margin %q", line, v)
			}
		}
		targets = append(targets, t)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("bulk: %w in csv file", domain.ErrNoProducts)
	}
	return targets, nil
}

func field(rec []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// Monitor evaluates every target, keeps only the opportunities whose margin
// meets marginThreshold, and merges them into one report ranked descending
// by margin. Per-target alert thresholds from the CSV are evaluated as well
// and returned alongside the report. A target whose platforms are all
// unknown is skipped, not fatal.
func (t *Tracker) Monitor(ctx context.Context, targets []MonitorTarget, marginThreshold float64) (report.BulkReport, []alert.Alert, error) {
	var (
		all       []domain.Opportunity
		allAlerts []alert.Alert
	)

	for _, target := range targets {
		platforms := t.registry.Filter(target.Platforms)
		if len(platforms) == 0 {
			t.logger.Warn("skipping target with no valid platforms",
				slog.String("product", target.Product),
			)
			continue
		}

		listings, err := t.searchAll(ctx, target.Product, platforms)
		if err != nil {
			return report.BulkReport{}, nil, fmt.Errorf("monitor %s: %w", target.Product, err)
		}

		opps := t.analyzer.Analyze(listings, arbitrage.Options{SortBy: domain.SortByMargin})

		engine := alert.NewEngine(alert.Config{
			PriceBelow:  target.AlertBelow,
			MarginAbove: target.AlertMargin,
		}, t.logger)
		allAlerts = append(allAlerts, engine.Evaluate(listings, opps)...)

		for _, o := range arbitrage.FilterByMargin(opps, marginThreshold) {
			o.Product = target.Product
			all = append(all, o)
		}
	}

	arbitrage.Sort(all, domain.SortByMargin)

	return report.BulkReport{
		MarginThreshold: marginThreshold,
		GeneratedAt:     time.Now(),
		Opportunities:   all,
	}, allAlerts, nil
}
