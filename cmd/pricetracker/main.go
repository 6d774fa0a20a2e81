// Command pricetracker is the entry point for the cross-platform price
// tracker. It loads configuration, applies command-line overrides, validates
// the result, wires dependencies, and runs the selected mode (track,
// compare, bulk, or history).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alanyoungcy/pricetracker/internal/app"
	"github.com/alanyoungcy/pricetracker/internal/config"
	"github.com/alanyoungcy/pricetracker/internal/domain"
)

func main() {
	var (
		configPath  = flag.String("config", "config.toml", "path to configuration file")
		mode        = flag.String("mode", "", "operating mode: track, compare, bulk, history")
		product     = flag.String("product", "", "product name/keyword")
		platforms   = flag.String("platforms", "", "comma-separated platform list")
		alertBelow  = flag.Float64("alert-below", 0, "alert when a price drops to or below this amount")
		alertMargin = flag.Float64("alert-margin", 0, "alert when an arbitrage margin reaches this fraction")
		sortBy      = flag.String("sort-by", "", "opportunity sort key: margin, price, rating")
		minRating   = flag.Float64("min-rating", 0, "minimum seller rating (compare mode)")
		output      = flag.String("output", "", "report format: markdown, json, csv")
		days        = flag.Int("days", 0, "days of price history (history mode)")
		csvPath     = flag.String("csv", "", "bulk-monitor CSV path (bulk mode)")
		trend       = flag.Bool("trend", false, "include trend analysis (history mode)")
	)
	flag.Parse()

	// Setup structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Flags override the file and environment; only flags the user actually
	// set are applied.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "product":
			cfg.Tracking.Product = *product
		case "platforms":
			cfg.Tracking.Platforms = splitList(*platforms)
		case "alert-below":
			cfg.Alerts.PriceBelow = *alertBelow
		case "alert-margin":
			cfg.Alerts.MarginAbove = *alertMargin
		case "sort-by":
			cfg.Tracking.SortBy = *sortBy
		case "min-rating":
			cfg.Tracking.MinRating = *minRating
		case "output":
			cfg.Tracking.Output = *output
		case "days":
			cfg.Tracking.Days = *days
		case "csv":
			cfg.Bulk.CSVPath = *csvPath
		case "trend":
			cfg.Tracking.TrendAnalysis = *trend
		}
	})

	// Set log level from config.
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	application := app.New(cfg, logger)

	// Setup signal handling so a long fan-out can be interrupted cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, domain.ErrNoValidPlatforms) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			logger.Error("run failed", slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
		os.Exit(1)
	}
}

// splitList splits a comma-separated flag value into trimmed, non-empty
// parts.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
