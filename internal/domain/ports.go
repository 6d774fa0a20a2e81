package domain

import "context"

// ListingSource supplies price observations for a product on one platform.
// Implementations must return listings already scoped to the requested
// platform; an empty result is not an error. Real marketplace clients and
// the mock source both satisfy this interface, so they can be swapped
// without touching the analyzer, alert, or trend layers.
type ListingSource interface {
	Search(ctx context.Context, keyword, platform string) ([]Listing, error)
}

// HistorySource supplies a trailing price series for a product on one
// platform, ordered by ascending date.
type HistorySource interface {
	History(ctx context.Context, keyword, platform string, days int) ([]PriceHistoryEntry, error)
}
