package domain

// Platform describes one marketplace: its identifier, display name, and the
// fraction of the transacted price it charges as a fee on a sale.
type Platform struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	FeeRate float64 `json:"fee_rate"`
}

// Listing is a single price observation for a product on one platform.
// Listings are constructed per search call and never mutated.
type Listing struct {
	Title     string  `json:"title"`
	Platform  string  `json:"platform"`
	Price     float64 `json:"price"`
	Seller    string  `json:"seller"`
	Rating    float64 `json:"rating"` // 0.0 - 5.0
	Condition string  `json:"condition"`
	URL       string  `json:"url"`
}
