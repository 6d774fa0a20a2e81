package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies PRICETRACKER_* environment variable overrides,
// and returns the final Config. A missing file is not an error; the defaults
// are used as-is so the tool works out of the box. The returned Config has
// NOT been validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known PRICETRACKER_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject notifier credentials at deploy time without touching
// the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Tracking ──
	setStr(&cfg.Tracking.Product, "PRICETRACKER_PRODUCT")
	setStringSlice(&cfg.Tracking.Platforms, "PRICETRACKER_PLATFORMS")
	setFloat64(&cfg.Tracking.ShippingCost, "PRICETRACKER_SHIPPING_COST")
	setStr(&cfg.Tracking.SortBy, "PRICETRACKER_SORT_BY")
	setFloat64(&cfg.Tracking.MinRating, "PRICETRACKER_MIN_RATING")
	setInt(&cfg.Tracking.Days, "PRICETRACKER_DAYS")
	setBool(&cfg.Tracking.TrendAnalysis, "PRICETRACKER_TREND_ANALYSIS")
	setStr(&cfg.Tracking.Output, "PRICETRACKER_OUTPUT")

	// ── Alerts ──
	setFloat64(&cfg.Alerts.PriceBelow, "PRICETRACKER_ALERT_PRICE_BELOW")
	setFloat64(&cfg.Alerts.MarginAbove, "PRICETRACKER_ALERT_MARGIN_ABOVE")
	setFloat64(&cfg.Alerts.MarginThreshold, "PRICETRACKER_ALERT_MARGIN_THRESHOLD")

	// ── Bulk ──
	setStr(&cfg.Bulk.CSVPath, "PRICETRACKER_BULK_CSV_PATH")
	setStr(&cfg.Bulk.OutputFile, "PRICETRACKER_BULK_OUTPUT_FILE")

	// ── Notify ──
	setStr(&cfg.Notify.TelegramToken, "PRICETRACKER_NOTIFY_TELEGRAM_TOKEN")
	setStr(&cfg.Notify.TelegramChatID, "PRICETRACKER_NOTIFY_TELEGRAM_CHAT_ID")
	setStr(&cfg.Notify.DiscordWebhookURL, "PRICETRACKER_NOTIFY_DISCORD_WEBHOOK_URL")
	setStringSlice(&cfg.Notify.Events, "PRICETRACKER_NOTIFY_EVENTS")

	// ── Top-level ──
	setStr(&cfg.Mode, "PRICETRACKER_MODE")
	setStr(&cfg.LogLevel, "PRICETRACKER_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
