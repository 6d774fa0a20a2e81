// Package report renders listing, opportunity, and trend collections as
// Markdown, JSON, or CSV. It never recomputes anything: margins arrive as a
// fraction plus a precomputed percentage string, and prices are formatted to
// two decimals only at the presentation edge.
package report

import (
	"time"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

// Format selects the output rendering.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
)

// Report is the result of one track or compare invocation.
type Report struct {
	Product       string               `json:"product"`
	GeneratedAt   time.Time            `json:"timestamp"`
	Listings      []domain.Listing     `json:"products"`
	Opportunities []domain.Opportunity `json:"arbitrage_opportunities"`
	Alerts        string               `json:"alerts,omitempty"`
}

// HistoryReport is the result of one history invocation, with one section
// per requested platform.
type HistoryReport struct {
	Product     string           `json:"product"`
	Days        int              `json:"days"`
	GeneratedAt time.Time        `json:"timestamp"`
	Sections    []HistorySection `json:"platforms"`
}

// HistorySection holds one platform's price series and optional trend
// analysis.
type HistorySection struct {
	PlatformID   string                     `json:"platform"`
	PlatformName string                     `json:"platform_name"`
	History      []domain.PriceHistoryEntry `json:"history"`
	Trend        *domain.TrendSummary       `json:"trend,omitempty"`
}

// BulkReport is the result of one bulk-monitor invocation: the merged,
// ranked opportunities that met the margin threshold across all monitored
// products.
type BulkReport struct {
	MarginThreshold float64              `json:"margin_threshold"`
	GeneratedAt     time.Time            `json:"timestamp"`
	Opportunities   []domain.Opportunity `json:"opportunities"`
}
