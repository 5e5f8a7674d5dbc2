package binance

import (
	"context"
	"strings"
	"testing"

	"github.com/benedictmc/news-trading/internal/market"
)

func aggTradeMsg(symbol, price, qty string, makerSell bool) []byte {
	m := "false"
	if makerSell {
		m = "true"
	}
	return []byte(`{"stream":"` + strings.ToLower(symbol) + `@aggTrade","data":{"e":"aggTrade","E":1685620000000,"s":"` + symbol + `","a":1,"p":"` + price + `","q":"` + qty + `","f":1,"l":1,"T":1685620000000,"m":` + m + `,"M":true}}`)
}

func TestTradeWorker_OnMessage(t *testing.T) {
	windows := market.NewWindowTable([]string{"BTCUSDT"})
	w := NewTradeWorker("wss://stream.binance.com:443", []string{"BTCUSDT"}, windows)
	ctx := context.Background()

	w.OnMessage(ctx, aggTradeMsg("BTCUSDT", "27643.21", "0.5", false))
	w.OnMessage(ctx, aggTradeMsg("BTCUSDT", "27644.00", "0.2", true))

	win, ok := windows.Snapshot("BTCUSDT")
	if !ok {
		t.Fatal("expected BTCUSDT window")
	}
	if win.TradeCount != 2 || win.BuyCount != 1 || win.SellCount != 1 {
		t.Errorf("window = %+v", win)
	}
	wantBought := 27643.21 * 0.5
	if win.VolumeBought != wantBought {
		t.Errorf("VolumeBought = %v, want %v", win.VolumeBought, wantBought)
	}
}

func TestTradeWorker_OnMessageDropsMalformed(t *testing.T) {
	windows := market.NewWindowTable([]string{"BTCUSDT"})
	w := NewTradeWorker("wss://stream.binance.com:443", []string{"BTCUSDT"}, windows)
	ctx := context.Background()

	cases := map[string][]byte{
		"garbage":      []byte("not json at all"),
		"empty object": []byte(`{}`),
		"bad price":    aggTradeMsg("BTCUSDT", "not-a-price", "1", false),
		"bad quantity": aggTradeMsg("BTCUSDT", "27000", "??", false),
	}

	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			w.OnMessage(ctx, msg)
			win, _ := windows.Snapshot("BTCUSDT")
			if win.TradeCount != 0 {
				t.Errorf("malformed message must be dropped, window = %+v", win)
			}
		})
	}
}

func TestTradeWorker_OnMessageUnknownSymbol(t *testing.T) {
	windows := market.NewWindowTable([]string{"BTCUSDT"})
	w := NewTradeWorker("wss://stream.binance.com:443", []string{"BTCUSDT"}, windows)

	// Symbols outside the universe are dropped silently.
	w.OnMessage(context.Background(), aggTradeMsg("NOSUCHUSDT", "1.0", "1.0", false))

	win, _ := windows.Snapshot("BTCUSDT")
	if win.TradeCount != 0 {
		t.Errorf("unexpected recording: %+v", win)
	}
}

func TestTradeWorker_URL(t *testing.T) {
	w := NewTradeWorker("wss://stream.binance.com:443", []string{"BTCUSDT", "ETHUSDT"}, nil)

	want := "wss://stream.binance.com:443/stream?streams=btcusdt@aggTrade/ethusdt@aggTrade"
	if got := w.URL(); got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
