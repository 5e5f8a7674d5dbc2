package domain

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Opposite returns the other side, used for the companion stop and target
// orders that close the position.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// OrderIntent is a fully-specified trade decision emitted by the decision
// task. The dispatch gate owns signing, submission and the companion
// stop/target orders; a dispatch failure does not roll back the cooldown or
// the news-event state.
type OrderIntent struct {
	Symbol          string  `json:"symbol"`
	Side            Side    `json:"side"`
	OrderType       string  `json:"order_type"` // "LIMIT"
	Price           float64 `json:"price"`
	Quantity        float64 `json:"quantity"`
	Leverage        int     `json:"leverage"`
	StopLossPrice   float64 `json:"stop_loss_price"`
	TakeProfitPrice float64 `json:"take_profit_price"`
	NewsID          string  `json:"news_id"`
	ZScore          float64 `json:"z_score"`
}
