package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alanyoungcy/pricetracker/internal/alert"
	"github.com/alanyoungcy/pricetracker/internal/domain"
	"github.com/alanyoungcy/pricetracker/internal/report"
	"github.com/alanyoungcy/pricetracker/internal/service"
)

// TrackMode runs the single-product pipeline: search, full ranked
// opportunity list, and alert evaluation. Triggered alerts are echoed to
// stderr for cron integration and pushed to any configured notify channels.
func (a *App) TrackMode(ctx context.Context, deps *Dependencies) error {
	rep, alerts, err := deps.Tracker.Track(ctx, service.TrackRequest{
		Product:   a.cfg.Tracking.Product,
		Platforms: a.cfg.Tracking.Platforms,
		SortBy:    domain.SortKey(a.cfg.Tracking.SortBy),
		Alerts: alert.Config{
			PriceBelow:  a.cfg.Alerts.PriceBelow,
			MarginAbove: a.cfg.Alerts.MarginAbove,
		},
	})
	if err != nil {
		return err
	}

	var out string
	switch report.Format(a.cfg.Tracking.Output) {
	case report.FormatJSON:
		out, err = report.JSON(rep)
	case report.FormatCSV:
		out, err = report.CSV(rep)
	default:
		out = report.Markdown(rep)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)

	if len(alerts) > 0 {
		fmt.Fprintln(a.errOut, "\n---ALERTS---")
		fmt.Fprintln(a.errOut, alert.Report(alerts))
		a.deliver(ctx, deps, alerts)
	}
	return nil
}

// CompareMode runs the cross-platform comparison: min-rating filter,
// selectable sort key, listings ordered by ascending price, no alerts.
func (a *App) CompareMode(ctx context.Context, deps *Dependencies) error {
	rep, err := deps.Tracker.Compare(ctx, service.CompareRequest{
		Product:   a.cfg.Tracking.Product,
		Platforms: a.cfg.Tracking.Platforms,
		SortBy:    domain.SortKey(a.cfg.Tracking.SortBy),
		MinRating: a.cfg.Tracking.MinRating,
	})
	if err != nil {
		return err
	}

	var out string
	switch report.Format(a.cfg.Tracking.Output) {
	case report.FormatJSON:
		out, err = report.JSON(rep)
	case report.FormatCSV:
		out, err = report.OpportunitiesCSV(rep)
	default:
		out = report.Markdown(rep)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

// BulkMode monitors every product in the CSV, reports the opportunities that
// met the margin threshold, and evaluates each row's own alert thresholds.
func (a *App) BulkMode(ctx context.Context, deps *Dependencies) error {
	targets, err := service.LoadTargets(a.cfg.Bulk.CSVPath)
	if err != nil {
		return err
	}

	rep, alerts, err := deps.Tracker.Monitor(ctx, targets, a.cfg.Alerts.MarginThreshold)
	if err != nil {
		return err
	}

	var out string
	switch report.Format(a.cfg.Tracking.Output) {
	case report.FormatJSON:
		out, err = report.BulkJSON(rep)
	default:
		out = report.BulkMarkdown(rep)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)

	if path := a.cfg.Bulk.OutputFile; path != "" {
		if werr := os.WriteFile(path, []byte(out), 0o644); werr != nil {
			return fmt.Errorf("bulk: write output file: %w", werr)
		}
	}

	if len(alerts) > 0 {
		fmt.Fprintf(a.errOut, "\n---ALERTS (%d opportunities found)---\n", len(rep.Opportunities))
		a.deliver(ctx, deps, alerts)
	}
	return nil
}

// HistoryMode renders per-platform synthetic price history with optional
// trend analysis. An empty platform list means every registered platform.
func (a *App) HistoryMode(ctx context.Context, deps *Dependencies) error {
	platforms := a.cfg.Tracking.Platforms
	// A single unknown platform requested explicitly is a hard error, which
	// the service reports once the filtered list comes back empty.
	rep, err := deps.Tracker.History(ctx, service.HistoryRequest{
		Product:       a.cfg.Tracking.Product,
		Platforms:     platforms,
		Days:          a.cfg.Tracking.Days,
		TrendAnalysis: a.cfg.Tracking.TrendAnalysis,
	})
	if err != nil {
		return err
	}

	var out string
	switch report.Format(a.cfg.Tracking.Output) {
	case report.FormatJSON:
		out, err = report.HistoryJSON(rep)
	case report.FormatCSV:
		out, err = report.HistoryCSV(rep)
	default:
		out = report.HistoryMarkdown(rep)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

// deliver pushes alerts to the configured notify channels. Delivery failures
// are logged, not fatal: the report has already been printed.
func (a *App) deliver(ctx context.Context, deps *Dependencies, alerts []alert.Alert) {
	if !deps.Notifier.Enabled() {
		return
	}
	title := "Price Tracker: " + strings.TrimSpace(a.cfg.Tracking.Product)
	if err := deps.Notifier.Dispatch(ctx, title, alerts); err != nil {
		a.logger.WarnContext(ctx, "alert delivery failed",
			slog.String("error", err.Error()),
		)
	}
}
