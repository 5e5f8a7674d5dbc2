package infra

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// streamProbe implements StreamHandler for testing.
type streamProbe struct {
	url            string
	pingErr        error
	onConnectCalls int32
	onMessageCalls int32
	onPingCalls    int32

	mu       sync.Mutex
	messages [][]byte
}

func (p *streamProbe) URL() string { return p.url }
func (p *streamProbe) ID() string  { return "PROBE" }
func (p *streamProbe) OnConnect(ctx context.Context, conn *websocket.Conn) error {
	atomic.AddInt32(&p.onConnectCalls, 1)
	return nil
}
func (p *streamProbe) OnMessage(ctx context.Context, msg []byte) {
	atomic.AddInt32(&p.onMessageCalls, 1)
	p.mu.Lock()
	p.messages = append(p.messages, msg)
	p.mu.Unlock()
}
func (p *streamProbe) OnPing(ctx context.Context, conn *websocket.Conn) error {
	atomic.AddInt32(&p.onPingCalls, 1)
	return p.pingErr
}

// newWSServer creates a test WebSocket server.
func newWSServer(t *testing.T, handler func(*websocket.Conn)) *httptest.Server {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade error: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
}

// httpToWS converts an http:// URL to ws://.
func httpToWS(url string) string {
	return strings.Replace(url, "http://", "ws://", 1)
}

func TestStreamWorker_ConnectAndReceive(t *testing.T) {
	server := newWSServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"test"}`))
		time.Sleep(100 * time.Millisecond)
	})
	defer server.Close()

	probe := &streamProbe{url: httpToWS(server.URL)}
	worker := NewStreamWorker(probe)
	worker.ReadTimeout = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	worker.Start(ctx)
	time.Sleep(200 * time.Millisecond)
	worker.Stop()

	if atomic.LoadInt32(&probe.onConnectCalls) == 0 {
		t.Error("OnConnect was not called")
	}
	if atomic.LoadInt32(&probe.onMessageCalls) == 0 {
		t.Error("OnMessage was not called")
	}
}

func TestStreamWorker_GracefulShutdown(t *testing.T) {
	serverClosed := make(chan struct{})
	server := newWSServer(t, func(conn *websocket.Conn) {
		<-serverClosed
	})
	defer server.Close()
	defer close(serverClosed)

	probe := &streamProbe{url: httpToWS(server.URL)}
	worker := NewStreamWorker(probe)

	worker.Start(context.Background())
	time.Sleep(100 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("Stop did not return within timeout")
	}
}

func TestStreamWorker_Write(t *testing.T) {
	receivedMsg := make(chan []byte, 1)

	server := newWSServer(t, func(conn *websocket.Conn) {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			receivedMsg <- msg
		}
		time.Sleep(100 * time.Millisecond)
	})
	defer server.Close()

	probe := &streamProbe{url: httpToWS(server.URL)}
	worker := NewStreamWorker(probe)

	worker.Start(context.Background())
	time.Sleep(100 * time.Millisecond)

	testMsg := []byte(`{"action":"subscribe"}`)
	if err := worker.Write(websocket.TextMessage, testMsg); err != nil {
		t.Errorf("Write failed: %v", err)
	}

	select {
	case msg := <-receivedMsg:
		if string(msg) != string(testMsg) {
			t.Errorf("expected %s, got %s", testMsg, msg)
		}
	case <-time.After(time.Second):
		t.Error("server did not receive message")
	}

	worker.Stop()
}

func TestStreamWorker_ReconnectsAfterFixedDelay(t *testing.T) {
	var connects int32
	server := newWSServer(t, func(conn *websocket.Conn) {
		atomic.AddInt32(&connects, 1)
		conn.WriteMessage(websocket.TextMessage, []byte(`{"seq":1}`))
		// Returning drops the connection and forces the client to redial.
	})
	defer server.Close()

	probe := &streamProbe{url: httpToWS(server.URL)}
	worker := NewStreamWorker(probe)
	worker.ReadTimeout = 500 * time.Millisecond
	worker.ReconnectDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Start(ctx)
	time.Sleep(500 * time.Millisecond)
	worker.Stop()

	if n := atomic.LoadInt32(&connects); n < 2 {
		t.Errorf("server saw %d connections, want at least 2", n)
	}
	if n := atomic.LoadInt32(&probe.onConnectCalls); n < 2 {
		t.Errorf("OnConnect called %d times, want at least 2", n)
	}
}

func TestStreamWorker_FailedPingForcesReconnect(t *testing.T) {
	serverClosed := make(chan struct{})
	server := newWSServer(t, func(conn *websocket.Conn) {
		<-serverClosed
	})
	defer server.Close()
	defer close(serverClosed)

	probe := &streamProbe{
		url:     httpToWS(server.URL),
		pingErr: errors.New("keep-alive lost"),
	}
	worker := NewStreamWorker(probe)
	worker.PingInterval = 50 * time.Millisecond
	worker.ReconnectDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Start(ctx)
	time.Sleep(500 * time.Millisecond)
	worker.Stop()

	if n := atomic.LoadInt32(&probe.onPingCalls); n == 0 {
		t.Fatal("ping loop never ran")
	}
	// Each failed ping closes the connection; the worker must come back.
	if n := atomic.LoadInt32(&probe.onConnectCalls); n < 2 {
		t.Errorf("OnConnect called %d times, want at least 2", n)
	}
}

func TestStreamWorker_StalePingLoopExits(t *testing.T) {
	probe := &streamProbe{}
	worker := NewStreamWorker(probe)
	worker.PingInterval = 10 * time.Millisecond

	// The worker has already moved on to a newer connection.
	stale := &websocket.Conn{}
	worker.mu.Lock()
	worker.conn = &websocket.Conn{}
	worker.mu.Unlock()

	done := make(chan struct{})
	go func() {
		worker.pingLoop(context.Background(), stale)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ping loop for a replaced connection did not exit")
	}
	if n := atomic.LoadInt32(&probe.onPingCalls); n != 0 {
		t.Errorf("stale ping loop pinged %d times on a connection it does not own", n)
	}
}
