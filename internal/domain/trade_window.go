package domain

// TradeWindow accumulates raw aggTrade activity for one symbol between two
// rolls. Invariant: TradeCount == BuyCount + SellCount.
type TradeWindow struct {
	TradeCount   int64   `json:"trade_count"`
	PriceSum     float64 `json:"price_sum"`
	VolumeBought float64 `json:"volume_bought"`
	VolumeSold   float64 `json:"volume_sold"`
	BuyCount     int64   `json:"buy_count"`
	SellCount    int64   `json:"sell_count"`
}

// Record applies a single parsed trade to the window.
// makerSell is the venue's "buyer is the market maker" flag: when true the
// aggressor sold into the book.
func (w *TradeWindow) Record(price, qty float64, makerSell bool) {
	w.TradeCount++
	w.PriceSum += price

	volume := price * qty
	if makerSell {
		w.VolumeSold += volume
		w.SellCount++
	} else {
		w.VolumeBought += volume
		w.BuyCount++
	}
}

// AveragePrice returns PriceSum/TradeCount, or NaN when the window is empty.
// Callers must treat NaN as "no price this window" and skip, never propagate.
func (w TradeWindow) AveragePrice() float64 {
	return w.PriceSum / float64(w.TradeCount)
}

// Metric returns the window value for one statistics metric.
func (w TradeWindow) Metric(m Metric) float64 {
	switch m {
	case MetricVolumeBought:
		return w.VolumeBought
	case MetricVolumeSold:
		return w.VolumeSold
	case MetricBuyCount:
		return float64(w.BuyCount)
	case MetricSellCount:
		return float64(w.SellCount)
	default:
		return 0
	}
}

// Reset zeroes the window in place.
func (w *TradeWindow) Reset() {
	*w = TradeWindow{}
}
