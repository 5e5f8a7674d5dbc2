package market

import (
	"sync"
	"testing"
)

func TestWindowTable_RecordAndSnapshot(t *testing.T) {
	table := NewWindowTable([]string{"BTCUSDT", "ETHUSDT"})

	table.RecordTrade("BTCUSDT", 27000, 0.5, false)
	table.RecordTrade("BTCUSDT", 27010, 0.2, true)

	w, ok := table.Snapshot("BTCUSDT")
	if !ok {
		t.Fatal("expected BTCUSDT window")
	}
	if w.TradeCount != 2 || w.BuyCount != 1 || w.SellCount != 1 {
		t.Errorf("window = %+v, want 2 trades, 1 buy, 1 sell", w)
	}

	// Untouched symbol stays zeroed.
	eth, _ := table.Snapshot("ETHUSDT")
	if eth.TradeCount != 0 {
		t.Errorf("ETHUSDT count = %d, want 0", eth.TradeCount)
	}
}

func TestWindowTable_UnknownSymbolDropped(t *testing.T) {
	table := NewWindowTable([]string{"BTCUSDT"})

	// Not an error: the feed may carry symbols outside the universe.
	table.RecordTrade("NOSUCHUSDT", 1, 1, false)

	if _, ok := table.Snapshot("NOSUCHUSDT"); ok {
		t.Error("unknown symbol must not create a window")
	}
	if table.Len() != 1 {
		t.Errorf("table len = %d, want 1", table.Len())
	}
}

func TestWindowTable_DrainResetsWindows(t *testing.T) {
	table := NewWindowTable([]string{"BTCUSDT"})
	table.RecordTrade("BTCUSDT", 27000, 1, false)

	drained := table.Drain()
	if drained["BTCUSDT"].TradeCount != 1 {
		t.Errorf("drained count = %d, want 1", drained["BTCUSDT"].TradeCount)
	}

	w, _ := table.Snapshot("BTCUSDT")
	if w.TradeCount != 0 {
		t.Errorf("window not reset after drain: %+v", w)
	}

	// A second drain observes nothing: each trade is rolled exactly once.
	again := table.Drain()
	if again["BTCUSDT"].TradeCount != 0 {
		t.Errorf("second drain count = %d, want 0", again["BTCUSDT"].TradeCount)
	}
}

func TestWindowTable_ConcurrentRecording(t *testing.T) {
	table := NewWindowTable([]string{"BTCUSDT"})

	const goroutines = 8
	const perGoroutine = 500

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(sell bool) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				table.RecordTrade("BTCUSDT", 100, 1, sell)
			}
		}(g%2 == 0)
	}
	wg.Wait()

	w, _ := table.Snapshot("BTCUSDT")
	if w.TradeCount != goroutines*perGoroutine {
		t.Errorf("TradeCount = %d, want %d", w.TradeCount, goroutines*perGoroutine)
	}
	if w.TradeCount != w.BuyCount+w.SellCount {
		t.Errorf("invariant broken under concurrency: %+v", w)
	}
}

func TestRoller_RollFoldsWindowIntoStats(t *testing.T) {
	windows := NewWindowTable([]string{"BTCUSDT"})
	stats := NewStatsTable([]string{"BTCUSDT"})
	roller := NewRoller(windows, stats, 0)

	for i := 0; i < 40; i++ {
		windows.RecordTrade("BTCUSDT", 27000, 0.1, false)
	}
	for i := 0; i < 10; i++ {
		windows.RecordTrade("BTCUSDT", 27000, 0.1, true)
	}
	roller.Roll()

	ts, ok := stats.Snapshot("BTCUSDT")
	if !ok {
		t.Fatal("expected BTCUSDT stats")
	}
	if ts.BuyCount.Count != 1 || ts.BuyCount.Mean != 40 {
		t.Errorf("buy stat = %+v, want one sample of 40", ts.BuyCount)
	}
	if ts.SellCount.Mean != 10 {
		t.Errorf("sell mean = %v, want 10", ts.SellCount.Mean)
	}

	// Window is reset after the roll.
	w, _ := windows.Snapshot("BTCUSDT")
	if w.TradeCount != 0 {
		t.Errorf("window not reset: %+v", w)
	}
}
