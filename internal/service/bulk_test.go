package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/pricetracker/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTargets(t *testing.T) {
	path := writeCSV(t, `product,platforms,alert_below,alert_margin
laptop,"amazon,ebay",900,0.15
headphones,walmart,,
`)

	targets, err := LoadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, "laptop", targets[0].Product)
	assert.Equal(t, []string{"amazon", "ebay"}, targets[0].Platforms)
	assert.Equal(t, 900.0, targets[0].AlertBelow)
	assert.Equal(t, 0.15, targets[0].AlertMargin)

	assert.Equal(t, "headphones", targets[1].Product)
	assert.Equal(t, []string{"walmart"}, targets[1].Platforms)
	assert.Zero(t, targets[1].AlertBelow)
	assert.Zero(t, targets[1].AlertMargin)
}

func TestLoadTargets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing required column",
			"product,alert_below\nlaptop,900\n",
			`missing required column "platforms"`,
		},
		{
			"row without a product",
			"product,platforms\n,amazon\n",
			"product and platforms are required",
		},
		{
			"row without platforms",
			"product,platforms\nlaptop,\n",
			"product and platforms are required",
		},
		{
			"invalid threshold",
			"product,platforms,alert_below\nlaptop,amazon,cheap\n",
			"invalid alert_below",
		},
		{
			"header only",
			"product,platforms\n",
			"no products found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTargets(writeCSV(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTargets_FileNotFound(t *testing.T) {
	_, err := LoadTargets(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestTracker_Monitor(t *testing.T) {
	src := &stubSource{listings: map[string][]domain.Listing{
		"amazon":  {testListing("amazon", 2000, 4.5)},
		"ebay":    {testListing("ebay", 850, 4.2)},
		"walmart": {testListing("walmart", 900, 4.6)},
	}}
	tracker := newTestTracker(src)

	targets := []MonitorTarget{
		{Product: "laptop", Platforms: []string{"amazon", "ebay"}, AlertBelow: 900},
		{Product: "monitor", Platforms: []string{"walmart", "amazon"}},
		{Product: "ghost", Platforms: []string{"aliexpress"}}, // skipped, not fatal
	}

	rep, alerts, err := tracker.Monitor(context.Background(), targets, 0.20)
	require.NoError(t, err)
	assert.Equal(t, 0.20, rep.MarginThreshold)

	// Only pairs at or above the threshold survive, ranked descending.
	for i, o := range rep.Opportunities {
		assert.GreaterOrEqual(t, o.Margin, 0.20, "opportunity %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, rep.Opportunities[i-1].Margin, o.Margin)
		}
	}

	// Buying ebay at 850 and selling amazon at 2000 clears 20% easily, so
	// the merged report is non-empty and tagged with the product name.
	require.NotEmpty(t, rep.Opportunities)
	assert.Equal(t, "laptop", rep.Opportunities[0].Product)

	// The first target's own price floor fires for the 850 listing.
	require.NotEmpty(t, alerts)
	assert.Equal(t, "price_drop", alerts[0].Event)
}

func TestTracker_MonitorAllTargetsSkipped(t *testing.T) {
	tracker := newTestTracker(&stubSource{})

	rep, alerts, err := tracker.Monitor(context.Background(), []MonitorTarget{
		{Product: "ghost", Platforms: []string{"aliexpress"}},
	}, 0.20)
	require.NoError(t, err)
	assert.Empty(t, rep.Opportunities)
	assert.Empty(t, alerts)
}
