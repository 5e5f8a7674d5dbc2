// Package stats implements the online per-metric estimators the correlation
// engine scores against. Estimators are never reset: stationarity is assumed
// to degrade slowly, so history accumulates for the process lifetime.
package stats

import (
	"math"

	"github.com/benedictmc/news-trading/internal/domain"
)

// RunningStat is a single-pass mean/variance estimator using Welford's
// algorithm. The zero value is ready to use.
type RunningStat struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	// M2 is the running sum of squared deviations from the mean.
	M2 float64 `json:"m2"`
}

// Update folds one sample into the estimator.
func (s *RunningStat) Update(x float64) {
	s.Count++
	delta := x - s.Mean
	s.Mean += delta / float64(s.Count)
	s.M2 += delta * (x - s.Mean)
}

// Variance returns the population variance, 0 with fewer than two samples.
func (s *RunningStat) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	return s.M2 / float64(s.Count)
}

// ZScore returns how many standard deviations x lies from the running mean.
// Returns 0 with fewer than two samples or zero variance, never Inf or NaN.
func (s *RunningStat) ZScore(x float64) float64 {
	sd := math.Sqrt(s.Variance())
	if sd == 0 {
		return 0
	}
	return (x - s.Mean) / sd
}

// TradeStats bundles one RunningStat per window metric for a symbol.
type TradeStats struct {
	VolumeBought RunningStat `json:"volume_bought"`
	VolumeSold   RunningStat `json:"volume_sold"`
	BuyCount     RunningStat `json:"buy_count"`
	SellCount    RunningStat `json:"sell_count"`
}

// Absorb folds a completed window into all four estimators. The metrics are
// independent accumulators, so their update order is insignificant.
func (t *TradeStats) Absorb(w domain.TradeWindow) {
	t.VolumeBought.Update(w.VolumeBought)
	t.VolumeSold.Update(w.VolumeSold)
	t.BuyCount.Update(float64(w.BuyCount))
	t.SellCount.Update(float64(w.SellCount))
}

// Stat returns the estimator for one metric.
func (t *TradeStats) Stat(m domain.Metric) *RunningStat {
	switch m {
	case domain.MetricVolumeBought:
		return &t.VolumeBought
	case domain.MetricVolumeSold:
		return &t.VolumeSold
	case domain.MetricBuyCount:
		return &t.BuyCount
	default:
		return &t.SellCount
	}
}
