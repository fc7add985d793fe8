package model

const (
	TrendUp   = "↗"
	TrendFlat = "→"
)

// PriceEntry is one mandi quote as displayed on the market page.
type PriceEntry struct {
	Commodity string `json:"commodity"`
	Market    string `json:"market"`
	State     string `json:"state"`
	Price     string `json:"price"`
	Trend     string `json:"trend"`
}

// FallbackPrices is shown when the market API fails and nothing is cached.
var FallbackPrices = []PriceEntry{
	{Commodity: "Tomato", Market: "Delhi", State: "Delhi", Price: "₹2500/quintal", Trend: TrendFlat},
}

// ClonePrices copies entries so callers cannot mutate a cached slice.
func ClonePrices(in []PriceEntry) []PriceEntry {
	if in == nil {
		return nil
	}
	out := make([]PriceEntry, len(in))
	copy(out, in)
	return out
}
