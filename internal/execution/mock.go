package execution

import (
	"context"
	"log/slog"
	"sync"

	"github.com/benedictmc/news-trading/internal/domain"
)

// MockGate logs and records intents instead of submitting them. Used in
// paper mode and by tests.
type MockGate struct {
	mu        sync.Mutex
	submitted []domain.OrderIntent

	// Err, when set, is returned from Submit to exercise failure paths.
	Err error
}

// NewMockGate creates an empty recording gate.
func NewMockGate() *MockGate {
	return &MockGate{}
}

func (g *MockGate) Submit(ctx context.Context, intent domain.OrderIntent) error {
	slog.Info("MOCK GATE: submit order",
		slog.String("symbol", intent.Symbol),
		slog.String("side", string(intent.Side)),
		slog.Float64("price", intent.Price),
		slog.Float64("qty", intent.Quantity),
		slog.Float64("z_score", intent.ZScore))

	g.mu.Lock()
	g.submitted = append(g.submitted, intent)
	g.mu.Unlock()
	return g.Err
}

// Submitted returns a copy of every intent received so far.
func (g *MockGate) Submitted() []domain.OrderIntent {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.OrderIntent, len(g.submitted))
	copy(out, g.submitted)
	return out
}
