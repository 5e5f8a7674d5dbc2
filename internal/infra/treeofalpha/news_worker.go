package treeofalpha

import (
	"context"
	"log/slog"
	"time"

	"github.com/benedictmc/news-trading/internal/domain"
	"github.com/benedictmc/news-trading/internal/infra"
	"github.com/benedictmc/news-trading/internal/market"
	"github.com/gorilla/websocket"
)

// NewsWorker consumes the news/social feed and turns tradable mentions into
// news-event records. It keeps the connection alive with a periodic ping; a
// failed ping forces a reconnect.
type NewsWorker struct {
	base       *infra.StreamWorker
	wsURL      string
	news       *market.NewsStore
	mentionTTL time.Duration
}

// NewNewsWorker builds the news-feed adapter.
func NewNewsWorker(wsURL string, pingInterval, mentionTTL time.Duration, news *market.NewsStore) *NewsWorker {
	w := &NewsWorker{
		wsURL:      wsURL,
		news:       news,
		mentionTTL: mentionTTL,
	}
	w.base = infra.NewStreamWorker(w)
	w.base.PingInterval = pingInterval
	// The feed is quiet for long stretches; only the ping guards liveness.
	w.base.ReadTimeout = 90 * time.Second
	return w
}

func (w *NewsWorker) ID() string  { return "TREEOFALPHA" }
func (w *NewsWorker) URL() string { return w.wsURL }

// Start launches the worker's connection loop.
func (w *NewsWorker) Start(ctx context.Context) {
	w.base.Start(ctx)
}

// Stop terminates the worker.
func (w *NewsWorker) Stop() {
	w.base.Stop()
}

func (w *NewsWorker) OnConnect(ctx context.Context, conn *websocket.Conn) error {
	return nil
}

// OnMessage decodes one feed message and records a mention for every
// tradable symbol it names. Messages matching no known shape are dropped
// with a diagnostic.
func (w *NewsWorker) OnMessage(ctx context.Context, msg []byte) {
	mention, err := DecodeMention(msg)
	if err != nil {
		slog.Warn("treeofalpha: undecodable message",
			slog.Any("error", err),
			slog.Int("bytes", len(msg)))
		return
	}

	slog.Info("treeofalpha: received news",
		slog.String("title", mention.Title),
		slog.Int("symbols", len(mention.Symbols)))

	now := time.Now()
	for _, symbol := range mention.Symbols {
		if !domain.IsTracked(symbol) {
			continue
		}
		ev := w.news.RecordMention(symbol, mention.Title, mention.NewsID, now, w.mentionTTL)
		slog.Info("news mention recorded",
			slog.String("symbol", symbol),
			slog.Int("occurrences", ev.OccurrenceCount))
	}
}

// OnPing sends a websocket-level ping; the worker reconnects on failure.
func (w *NewsWorker) OnPing(ctx context.Context, conn *websocket.Conn) error {
	return w.base.Write(websocket.PingMessage, nil)
}
