package domain

import "time"

// Metric identifies one of the four per-symbol activity series tracked by
// the statistics engine.
type Metric int

const (
	MetricVolumeBought Metric = iota
	MetricVolumeSold
	MetricBuyCount
	MetricSellCount

	MetricCount
)

func (m Metric) String() string {
	switch m {
	case MetricVolumeBought:
		return "volume_bought"
	case MetricVolumeSold:
		return "volume_sold"
	case MetricBuyCount:
		return "buy_count"
	case MetricSellCount:
		return "sell_count"
	default:
		return "unknown"
	}
}

// NewsEvent is the per-symbol correlation record created on the first news
// mention of a tradable symbol and kept until it expires or triggers a
// trade. MaxZScores holds a running maximum of observed z-scores per metric
// across decision ticks, so a brief spike is not erased by a quieter tick.
type NewsEvent struct {
	Symbol          string    `json:"symbol"`
	NewsID          string    `json:"news_id"`
	Title           string    `json:"title"`
	StartedAt       time.Time `json:"started_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	OccurrenceCount int       `json:"occurrence_count"`

	// BaselinePrice stays 0 until the first non-NaN window average is
	// observed, then never changes.
	BaselinePrice   float64 `json:"baseline_price"`
	MaxPriceDiffPos float64 `json:"max_price_diff_pos"`
	MaxPriceDiffNeg float64 `json:"max_price_diff_neg"`

	MaxZScores [MetricCount]float64 `json:"max_z_scores"`
}

// TotalZScore is the unweighted sum of the four per-metric maxima. The
// unweighted sum is a contract: downstream thresholds were tuned against it.
func (e *NewsEvent) TotalZScore() float64 {
	var total float64
	for _, z := range e.MaxZScores {
		total += z
	}
	return total
}

// Expired reports whether the event's time-to-live has passed.
func (e *NewsEvent) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
