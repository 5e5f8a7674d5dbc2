package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/benedictmc/news-trading/internal/domain"
)

// FuturesClient submits signed futures orders. It implements the execution
// gate: one leverage call, the entry LIMIT order, then the companion stop
// and target orders on the opposite side. A companion failure is logged but
// does not undo the entry; the engine treats dispatch as fire-and-forget.
type FuturesClient struct {
	baseURL string
	signer  *Signer
	client  *http.Client
}

// NewFuturesClient creates a REST client against the given base URL.
func NewFuturesClient(baseURL string, signer *Signer) *FuturesClient {
	return &FuturesClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  signer,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit dispatches a full order intent.
func (c *FuturesClient) Submit(ctx context.Context, intent domain.OrderIntent) error {
	if err := c.changeLeverage(ctx, intent.Symbol, intent.Leverage); err != nil {
		return fmt.Errorf("failed to change leverage: %w", err)
	}

	ts := time.Now().UnixMilli()
	qty := formatFloat(intent.Quantity)

	entry := fmt.Sprintf("symbol=%s&side=%s&type=%s&quantity=%s&price=%s&timeInForce=GTC&timestamp=%d",
		intent.Symbol, intent.Side, intent.OrderType, qty, formatFloat(intent.Price), ts)
	if err := c.postOrder(ctx, entry); err != nil {
		return fmt.Errorf("entry order rejected: %w", err)
	}

	opposite := intent.Side.Opposite()

	stop := fmt.Sprintf("symbol=%s&side=%s&type=STOP_MARKET&quantity=%s&stopPrice=%s&timeInForce=GTC&timestamp=%d",
		intent.Symbol, opposite, qty, formatFloat(intent.StopLossPrice), ts)
	if err := c.postOrder(ctx, stop); err != nil {
		slog.Error("stop order rejected",
			slog.String("symbol", intent.Symbol),
			slog.Any("error", err))
	}

	target := fmt.Sprintf("symbol=%s&side=%s&type=TAKE_PROFIT_MARKET&quantity=%s&stopPrice=%s&timeInForce=GTC&timestamp=%d",
		intent.Symbol, opposite, qty, formatFloat(intent.TakeProfitPrice), ts)
	if err := c.postOrder(ctx, target); err != nil {
		slog.Error("take-profit order rejected",
			slog.String("symbol", intent.Symbol),
			slog.Any("error", err))
	}

	return nil
}

func (c *FuturesClient) changeLeverage(ctx context.Context, symbol string, leverage int) error {
	params := fmt.Sprintf("symbol=%s&leverage=%d&timestamp=%d", symbol, leverage, time.Now().UnixMilli())
	return c.signedPost(ctx, "/fapi/v1/leverage", params)
}

func (c *FuturesClient) postOrder(ctx context.Context, params string) error {
	return c.signedPost(ctx, "/fapi/v1/order", params)
}

func (c *FuturesClient) signedPost(ctx context.Context, path, params string) error {
	signature := c.signer.Sign(params)
	url := fmt.Sprintf("%s%s?%s&signature=%s", c.baseURL, path, params, signature)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Msg != "" {
			return fmt.Errorf("venue rejected request (%d): %s", apiErr.Code, apiErr.Msg)
		}
		return fmt.Errorf("venue returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
