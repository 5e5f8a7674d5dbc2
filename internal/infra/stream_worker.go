package infra

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StreamHandler defines feed-specific logic for the StreamWorker.
type StreamHandler interface {
	URL() string
	OnConnect(ctx context.Context, conn *websocket.Conn) error
	OnMessage(ctx context.Context, msg []byte)
	OnPing(ctx context.Context, conn *websocket.Conn) error
	ID() string
}

// StreamWorker manages the lifecycle of one feed connection: dial, read
// deadline, periodic keep-alive ping, thread-safe writes, and reconnect
// after a fixed delay. Connection loss is routine; the worker retries
// indefinitely until its context is cancelled.
type StreamWorker struct {
	handler StreamHandler
	mu      sync.RWMutex
	conn    *websocket.Conn
	writeMu sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	ReadTimeout    time.Duration
	PingInterval   time.Duration // 0 disables the ping loop
	ReconnectDelay time.Duration
}

// NewStreamWorker creates a worker with the standard timeouts.
func NewStreamWorker(handler StreamHandler) *StreamWorker {
	return &StreamWorker{
		handler:        handler,
		ReadTimeout:    60 * time.Second,
		PingInterval:   0,
		ReconnectDelay: 5 * time.Second,
	}
}

// Start launches the connection loop.
func (w *StreamWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.runLoop(ctx)
}

// Stop terminates the worker and waits for the loop to exit.
func (w *StreamWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.close()
	w.wg.Wait()
}

func (w *StreamWorker) runLoop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := w.connect(ctx); err != nil {
			slog.Warn("stream connection failed",
				slog.String("id", w.handler.ID()),
				slog.Any("error", err))

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.ReconnectDelay):
				continue
			}
		}

		w.process(ctx)

		// Read loop returned: drop the connection and redial after the
		// same fixed delay.
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.ReconnectDelay):
		}
	}
}

func (w *StreamWorker) connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}

	conn, _, err := dialer.DialContext(ctx, w.handler.URL(), nil)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()

	if err := w.handler.OnConnect(ctx, conn); err != nil {
		w.close()
		return fmt.Errorf("OnConnect failed: %w", err)
	}

	if w.PingInterval > 0 {
		go w.pingLoop(ctx, conn)
	}

	slog.Info("stream connected", slog.String("id", w.handler.ID()))
	return nil
}

func (w *StreamWorker) process(ctx context.Context) {
	for {
		w.mu.RLock()
		c := w.conn
		w.mu.RUnlock()
		if c == nil {
			return
		}

		c.SetReadDeadline(time.Now().Add(w.ReadTimeout))
		_, msg, err := c.ReadMessage()
		if err != nil {
			slog.Warn("stream read error",
				slog.String("id", w.handler.ID()),
				slog.Any("error", err))
			w.close()
			return
		}

		w.handler.OnMessage(ctx, msg)
	}
}

// pingLoop keeps one connection alive. It is bound to the connection it was
// started for: once the worker moves on to a newer connection, the loop
// exits instead of pinging on behalf of a connection it does not own.
func (w *StreamWorker) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(w.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.mu.RLock()
			current := w.conn
			w.mu.RUnlock()
			if current != conn {
				return
			}
			// A failed keep-alive means the connection is dead: close it
			// so the read loop unblocks and the worker redials.
			if err := w.handler.OnPing(ctx, conn); err != nil {
				slog.Warn("stream ping error",
					slog.String("id", w.handler.ID()),
					slog.Any("error", err))
				w.close()
				return
			}
		}
	}
}

// Write sends one message on the current connection. Safe for concurrent use.
func (w *StreamWorker) Write(msgType int, data []byte) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.RLock()
	c := w.conn
	w.mu.RUnlock()

	if c == nil {
		return fmt.Errorf("stream not connected")
	}

	return c.WriteMessage(msgType, data)
}

func (w *StreamWorker) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		w.conn.Close()
		w.conn = nil
	}
}
