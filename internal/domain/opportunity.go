package domain

// Opportunity represents one (buy listing, sell listing) pair with its
// computed margin. Margin is a signed fraction of total cost and may be
// negative; negative opportunities are still produced and ranked unless a
// caller filters on a margin threshold.
type Opportunity struct {
	ID            string  `json:"id"`
	Product       string  `json:"product,omitempty"`
	BuyFrom       string  `json:"buy_from"`
	BuyPrice      float64 `json:"buy_price"`
	BuyRating     float64 `json:"buy_rating"`
	SellOn        string  `json:"sell_on"`
	SellPrice     float64 `json:"sell_price"`
	SellRating    float64 `json:"sell_rating"`
	Margin        float64 `json:"margin"`
	MarginPercent string  `json:"margin_percent"`
}

// SortKey selects the opportunity ranking order.
type SortKey string

const (
	SortByMargin SortKey = "margin"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
)

// Valid reports whether the sort key is one of the known values.
func (k SortKey) Valid() bool {
	switch k {
	case SortByMargin, SortByPrice, SortByRating:
		return true
	}
	return false
}
