package binance

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/benedictmc/news-trading/internal/infra"
	"github.com/benedictmc/news-trading/internal/market"
	"github.com/gorilla/websocket"
)

// TradeWorker consumes the aggTrade combined stream and feeds the window
// table. This is the high-frequency path: parse, two float conversions, one
// table call, nothing else.
type TradeWorker struct {
	base    *infra.StreamWorker
	wsBase  string
	symbols []string
	windows *market.WindowTable
}

// NewTradeWorker builds the trade-feed adapter for the tracked symbols.
func NewTradeWorker(wsBase string, symbols []string, windows *market.WindowTable) *TradeWorker {
	w := &TradeWorker{
		wsBase:  wsBase,
		symbols: symbols,
		windows: windows,
	}
	w.base = infra.NewStreamWorker(w)
	// The combined stream has no client keep-alive; the server pings and
	// gorilla's default handler answers during ReadMessage.
	w.base.PingInterval = 0
	return w
}

func (w *TradeWorker) ID() string { return "BINANCE_AGGTRADE" }

// URL subscribes via the combined-stream path, one aggTrade stream per
// tracked symbol.
func (w *TradeWorker) URL() string {
	streams := make([]string, 0, len(w.symbols))
	for _, s := range w.symbols {
		streams = append(streams, strings.ToLower(s)+"@aggTrade")
	}
	return w.wsBase + "/stream?streams=" + strings.Join(streams, "/")
}

// Start launches the worker's connection loop.
func (w *TradeWorker) Start(ctx context.Context) {
	w.base.Start(ctx)
}

// Stop terminates the worker.
func (w *TradeWorker) Stop() {
	w.base.Stop()
}

func (w *TradeWorker) OnConnect(ctx context.Context, conn *websocket.Conn) error {
	// Subscription is carried in the URL; nothing to send.
	return nil
}

// OnMessage parses one aggTrade message and records it. Malformed messages
// are dropped with a diagnostic, never fatal.
func (w *TradeWorker) OnMessage(ctx context.Context, msg []byte) {
	var parsed combinedStreamMessage
	if err := json.Unmarshal(msg, &parsed); err != nil {
		slog.Debug("binance: failed to deserialize message", slog.Any("error", err))
		return
	}
	if parsed.Data.Symbol == "" {
		return
	}

	price, err := strconv.ParseFloat(parsed.Data.Price, 64)
	if err != nil {
		slog.Debug("binance: bad price", slog.String("price", parsed.Data.Price))
		return
	}
	qty, err := strconv.ParseFloat(parsed.Data.Quantity, 64)
	if err != nil {
		slog.Debug("binance: bad quantity", slog.String("qty", parsed.Data.Quantity))
		return
	}

	w.windows.RecordTrade(parsed.Data.Symbol, price, qty, parsed.Data.MakerSell)
}

func (w *TradeWorker) OnPing(ctx context.Context, conn *websocket.Conn) error {
	return nil
}
