// Package market holds the shared per-symbol tables and the two periodic
// tasks that drive the correlation engine. Each table guards its own map
// with its own mutex; callers only ever see copies, never references into a
// table, and no code path holds two table locks at once.
package market

import (
	"sync"

	"github.com/benedictmc/news-trading/internal/domain"
)

// WindowTable is the per-symbol trade-window table written by the trade feed
// on every message. RecordTrade is the hot path: keep the critical section
// to the single map lookup plus field increments.
type WindowTable struct {
	mu      sync.Mutex
	windows map[string]*domain.TradeWindow
}

// NewWindowTable pre-creates a zeroed window for every tracked symbol.
// Windows live for the process lifetime; they are reset, never removed.
func NewWindowTable(symbols []string) *WindowTable {
	t := &WindowTable{windows: make(map[string]*domain.TradeWindow, len(symbols))}
	for _, s := range symbols {
		t.windows[s] = &domain.TradeWindow{}
	}
	return t
}

// RecordTrade folds one trade into the symbol's window. Unknown symbols are
// dropped silently: the feed may carry symbols outside the tracked universe.
func (t *WindowTable) RecordTrade(symbol string, price, qty float64, makerSell bool) {
	t.mu.Lock()
	if w, ok := t.windows[symbol]; ok {
		w.Record(price, qty, makerSell)
	}
	t.mu.Unlock()
}

// Snapshot returns a copy of the symbol's current window.
func (t *WindowTable) Snapshot(symbol string) (domain.TradeWindow, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.windows[symbol]
	if !ok {
		return domain.TradeWindow{}, false
	}
	return *w, true
}

// Drain copies every window out and resets them to zero in one critical
// section, so a roll observes each trade exactly once. The caller feeds the
// returned copies into the statistics table outside this table's lock.
func (t *WindowTable) Drain() map[string]domain.TradeWindow {
	t.mu.Lock()
	defer t.mu.Unlock()

	drained := make(map[string]domain.TradeWindow, len(t.windows))
	for symbol, w := range t.windows {
		drained[symbol] = *w
		w.Reset()
	}
	return drained
}

// Len returns the number of tracked windows.
func (t *WindowTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.windows)
}
