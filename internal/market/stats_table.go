package market

import (
	"sync"

	"github.com/benedictmc/news-trading/internal/domain"
	"github.com/benedictmc/news-trading/internal/stats"
)

// StatsTable holds one TradeStats per tracked symbol. The roller is its only
// writer; the decision task reads copies.
type StatsTable struct {
	mu    sync.Mutex
	table map[string]*stats.TradeStats
}

// NewStatsTable pre-creates zeroed estimators for every tracked symbol.
func NewStatsTable(symbols []string) *StatsTable {
	t := &StatsTable{table: make(map[string]*stats.TradeStats, len(symbols))}
	for _, s := range symbols {
		t.table[s] = &stats.TradeStats{}
	}
	return t
}

// Absorb folds a set of drained windows into the estimators. Called once per
// roll with the copies returned by WindowTable.Drain, never while holding
// the window lock.
func (t *StatsTable) Absorb(windows map[string]domain.TradeWindow) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for symbol, w := range windows {
		if ts, ok := t.table[symbol]; ok {
			ts.Absorb(w)
		}
	}
}

// Snapshot returns a copy of the symbol's estimators.
func (t *StatsTable) Snapshot(symbol string) (stats.TradeStats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ts, ok := t.table[symbol]
	if !ok {
		return stats.TradeStats{}, false
	}
	return *ts, true
}
