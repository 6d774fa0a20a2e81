// Package config defines the top-level configuration for the price tracker
// and provides validation helpers.
package config

import (
	"fmt"
	"strings"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by PRICETRACKER_* environment
// variables and command-line flags.
type Config struct {
	Marketplaces []MarketplaceConfig `toml:"marketplace"`
	Tracking     TrackingConfig      `toml:"tracking"`
	Alerts       AlertConfig         `toml:"alerts"`
	Bulk         BulkConfig          `toml:"bulk"`
	Notify       NotifyConfig        `toml:"notify"`
	Mode         string              `toml:"mode"`
	LogLevel     string              `toml:"log_level"`
}

// MarketplaceConfig declares one platform in the fee registry.
type MarketplaceConfig struct {
	ID      string  `toml:"id"`
	Name    string  `toml:"name"`
	FeeRate float64 `toml:"fee_rate"`
}

// TrackingConfig holds the product search and report parameters.
type TrackingConfig struct {
	Product       string   `toml:"product"`
	Platforms     []string `toml:"platforms"`
	ShippingCost  float64  `toml:"shipping_cost"`
	SortBy        string   `toml:"sort_by"`
	MinRating     float64  `toml:"min_rating"`
	Days          int      `toml:"days"`
	TrendAnalysis bool     `toml:"trend_analysis"`
	Output        string   `toml:"output"`
}

// AlertConfig holds the threshold rules. A threshold <= 0 disables the
// corresponding rule.
type AlertConfig struct {
	PriceBelow  float64 `toml:"price_below"`
	MarginAbove float64 `toml:"margin_above"`
	// MarginThreshold is the bulk-monitor reporting floor: opportunities
	// below it are not included in the bulk report at all.
	MarginThreshold float64 `toml:"margin_threshold"`
}

// BulkConfig holds bulk-monitor parameters.
type BulkConfig struct {
	CSVPath    string `toml:"csv_path"`
	OutputFile string `toml:"output_file"`
}

// NotifyConfig holds notification channel credentials. Channels with empty
// credentials are not constructed.
type NotifyConfig struct {
	TelegramToken     string   `toml:"telegram_token"`
	TelegramChatID    string   `toml:"telegram_chat_id"`
	DiscordWebhookURL string   `toml:"discord_webhook_url"`
	Events            []string `toml:"events"`
}

// Defaults returns a Config populated with the built-in platform fee table
// and reasonable default values.
func Defaults() Config {
	return Config{
		Marketplaces: []MarketplaceConfig{
			{ID: "amazon", Name: "Amazon", FeeRate: 0.15},
			{ID: "ebay", Name: "eBay", FeeRate: 0.13},
			{ID: "walmart", Name: "Walmart", FeeRate: 0.10},
			{ID: "bestbuy", Name: "Best Buy", FeeRate: 0.12},
		},
		Tracking: TrackingConfig{
			Platforms:    []string{"amazon", "ebay", "walmart", "bestbuy"},
			ShippingCost: 10.0,
			SortBy:       "margin",
			MinRating:    0.0,
			Days:         30,
			Output:       "markdown",
		},
		Alerts: AlertConfig{
			MarginThreshold: 0.20,
		},
		Notify: NotifyConfig{
			Events: []string{"price_drop", "arbitrage"},
		},
		Mode:     "track",
		LogLevel: "info",
	}
}

// validModes enumerates the accepted values for Config.Mode.
var validModes = map[string]bool{
	"track":   true,
	"compare": true,
	"bulk":    true,
	"history": true,
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validOutputs enumerates the accepted report formats.
var validOutputs = map[string]bool{
	"markdown": true,
	"json":     true,
	"csv":      true,
}

// Validate checks Config for obviously invalid or missing values and returns
// a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validModes[strings.ToLower(c.Mode)] {
		errs = append(errs, fmt.Sprintf("unknown mode %q (valid: track, compare, bulk, history)", c.Mode))
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}
	if !validOutputs[strings.ToLower(c.Tracking.Output)] {
		errs = append(errs, fmt.Sprintf("unknown output %q (valid: markdown, json, csv)", c.Tracking.Output))
	}
	if !domain.SortKey(c.Tracking.SortBy).Valid() {
		errs = append(errs, fmt.Sprintf("unknown sort_by %q (valid: margin, price, rating)", c.Tracking.SortBy))
	}

	// Marketplaces
	if len(c.Marketplaces) == 0 {
		errs = append(errs, "marketplace: at least one platform must be configured")
	}
	seen := make(map[string]bool, len(c.Marketplaces))
	for _, m := range c.Marketplaces {
		if m.ID == "" {
			errs = append(errs, "marketplace: id must not be empty")
			continue
		}
		if seen[m.ID] {
			errs = append(errs, fmt.Sprintf("marketplace: duplicate id %q", m.ID))
		}
		seen[m.ID] = true
		if m.FeeRate < 0 || m.FeeRate >= 1 {
			errs = append(errs, fmt.Sprintf("marketplace %s: fee_rate must be in [0, 1), got %g", m.ID, m.FeeRate))
		}
	}

	// Tracking
	mode := strings.ToLower(c.Mode)
	if mode != "bulk" && strings.TrimSpace(c.Tracking.Product) == "" {
		errs = append(errs, "tracking: product is required for mode "+c.Mode)
	}
	if c.Tracking.ShippingCost < 0 {
		errs = append(errs, "tracking: shipping_cost must be >= 0")
	}
	if c.Tracking.MinRating < 0 || c.Tracking.MinRating > 5 {
		errs = append(errs, fmt.Sprintf("tracking: min_rating must be 0-5, got %g", c.Tracking.MinRating))
	}
	if c.Tracking.Days < 1 {
		errs = append(errs, fmt.Sprintf("tracking: days must be >= 1, got %d", c.Tracking.Days))
	}

	// Bulk
	if mode == "bulk" && strings.TrimSpace(c.Bulk.CSVPath) == "" {
		errs = append(errs, "bulk: csv_path is required for mode bulk")
	}

	// Notify — token and chat id must be set together.
	tk := c.Notify.TelegramToken != ""
	tc := c.Notify.TelegramChatID != ""
	if tk != tc {
		errs = append(errs, "notify: telegram_token and telegram_chat_id must be set together")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Platforms converts the configured marketplaces into domain platforms for
// the registry.
func (c *Config) Platforms() []domain.Platform {
	out := make([]domain.Platform, 0, len(c.Marketplaces))
	for _, m := range c.Marketplaces {
		out = append(out, domain.Platform{ID: m.ID, Name: m.Name, FeeRate: m.FeeRate})
	}
	return out
}
