// Package app provides the top-level application lifecycle for the price
// tracker. It wires together the fee registry, mock sources, analyzer,
// alert engine, notifier, and report renderers, and runs the operation the
// configured mode selects.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/alanyoungcy/pricetracker/internal/arbitrage"
	"github.com/alanyoungcy/pricetracker/internal/config"
	"github.com/alanyoungcy/pricetracker/internal/notify"
	"github.com/alanyoungcy/pricetracker/internal/platform"
	"github.com/alanyoungcy/pricetracker/internal/service"
	"github.com/alanyoungcy/pricetracker/internal/source"
)

// App is the root application object. It owns the configuration, logger, and
// the output streams reports and alerts are written to.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

// New creates a new App writing reports to stdout and alert summaries to
// stderr, as cron integrations expect.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// Run wires the dependencies, selects the operating mode, and executes one
// invocation. Each invocation is stateless: everything is constructed fresh
// and nothing is persisted.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting price tracker",
		slog.String("mode", a.cfg.Mode),
		slog.String("product", a.cfg.Tracking.Product),
	)

	deps := a.wire()

	switch strings.ToLower(a.cfg.Mode) {
	case "track":
		return a.TrackMode(ctx, deps)
	case "compare":
		return a.CompareMode(ctx, deps)
	case "bulk":
		return a.BulkMode(ctx, deps)
	case "history":
		return a.HistoryMode(ctx, deps)
	default:
		return fmt.Errorf("app: unsupported mode %q", a.cfg.Mode)
	}
}

// Dependencies holds the wired collaborators the modes operate on.
type Dependencies struct {
	Registry *platform.Registry
	Tracker  *service.Tracker
	Notifier *notify.Notifier
}

// wire builds the dependency graph: registry from the configured fee table,
// the mock source behind the listing/history ports, the margin calculator
// and analyzer on top of the registry, and the notifier from whichever
// channels have credentials.
func (a *App) wire() *Dependencies {
	registry := platform.NewRegistry(a.cfg.Platforms())

	mock := source.NewMock(rand.New(rand.NewSource(time.Now().UnixNano())))

	calc := arbitrage.NewCalculator(registry, a.cfg.Tracking.ShippingCost)
	analyzer := arbitrage.NewAnalyzer(calc, a.logger)
	tracker := service.NewTracker(mock, mock, registry, analyzer, a.logger)

	var senders []notify.Sender
	if a.cfg.Notify.TelegramToken != "" && a.cfg.Notify.TelegramChatID != "" {
		senders = append(senders, notify.NewTelegramSender(a.cfg.Notify.TelegramToken, a.cfg.Notify.TelegramChatID))
	}
	if a.cfg.Notify.DiscordWebhookURL != "" {
		senders = append(senders, notify.NewDiscordSender(a.cfg.Notify.DiscordWebhookURL))
	}
	notifier := notify.NewNotifier(senders, a.cfg.Notify.Events, a.logger)

	return &Dependencies{
		Registry: registry,
		Tracker:  tracker,
		Notifier: notifier,
	}
}
