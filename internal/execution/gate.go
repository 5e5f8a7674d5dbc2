// Package execution defines the order dispatch boundary. The decision task
// hands a fully-specified intent across this interface and never looks back:
// dispatch failures are reported, not retried.
package execution

import (
	"context"

	"github.com/benedictmc/news-trading/internal/domain"
)

// Gate receives order intents for signing and submission, including the
// companion stop-loss and take-profit orders.
type Gate interface {
	Submit(ctx context.Context, intent domain.OrderIntent) error
}
