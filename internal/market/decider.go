package market

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/benedictmc/news-trading/internal/domain"
	"github.com/benedictmc/news-trading/internal/execution"
)

// Exporter persists an expiring news event for offline analysis.
type Exporter interface {
	ExportNewsEvent(ev domain.NewsEvent) error
}

// TriggerLog records emitted intents and event expiries durably.
type TriggerLog interface {
	RecordTrigger(ctx context.Context, intent domain.OrderIntent, ev domain.NewsEvent) error
	RecordExpiry(ctx context.Context, ev domain.NewsEvent) error
}

// DeciderConfig carries the decision-task tunables.
type DeciderConfig struct {
	Interval         time.Duration
	TriggerThreshold float64
	DiagThreshold    float64
	Cooldown         time.Duration
	NotionalUSDT     float64
	Leverage         int
	StopLossPct      float64
	TakeProfitPct    float64
}

// DefaultDeciderConfig mirrors the tuned production values.
func DefaultDeciderConfig() DeciderConfig {
	return DeciderConfig{
		Interval:         500 * time.Millisecond,
		TriggerThreshold: 100.0,
		DiagThreshold:    10.0,
		Cooldown:         30 * time.Minute,
		NotionalUSDT:     200.0,
		Leverage:         5,
		StopLossPct:      0.005,
		TakeProfitPct:    0.01,
	}
}

// Decider is the correlation/decision task. Every tick it scores each active
// news event against the current window and the running statistics, and on a
// threshold breach emits one order intent and locks the symbol's cooldown.
//
// Lock discipline: each table is touched on its own. A tick copies the
// window, copies the statistics, then mutates the news event under the news
// lock alone; removals computed during the read pass are applied in a
// second pass, so the event map is never mutated while being iterated.
type Decider struct {
	windows   *WindowTable
	stats     *StatsTable
	news      *NewsStore
	cooldowns *CooldownRegistry
	gate      execution.Gate
	exporter  Exporter
	log       TriggerLog
	cfg       DeciderConfig

	now func() time.Time
}

// NewDecider wires the decision task. exporter and log may be nil.
func NewDecider(windows *WindowTable, stats *StatsTable, news *NewsStore, cooldowns *CooldownRegistry, gate execution.Gate, exporter Exporter, log TriggerLog, cfg DeciderConfig) *Decider {
	if cfg.Interval <= 0 {
		cfg.Interval = 500 * time.Millisecond
	}
	return &Decider{
		windows:   windows,
		stats:     stats,
		news:      news,
		cooldowns: cooldowns,
		gate:      gate,
		exporter:  exporter,
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Run blocks until ctx is cancelled, ticking once per interval.
func (d *Decider) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	slog.Info("decision task started",
		slog.Duration("interval", d.cfg.Interval),
		slog.Float64("threshold", d.cfg.TriggerThreshold))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// evaluation is what one scoring pass observed for a symbol, copied out of
// the news lock so the trigger path can consult the cooldown registry
// without holding two locks.
type evaluation struct {
	totalZ       float64
	currentPrice float64
	baseline     float64
	title        string
	newsID       string
	snapshot     domain.NewsEvent
}

// Tick performs one decision pass and returns the intents it emitted.
func (d *Decider) Tick(ctx context.Context) []domain.OrderIntent {
	live, expired := d.news.Partition(d.now())
	if len(live) == 0 && len(expired) == 0 {
		return nil
	}

	var emitted []domain.OrderIntent
	for _, symbol := range live {
		eval, ok := d.evaluate(symbol)
		if !ok {
			continue
		}

		if eval.totalZ > d.cfg.DiagThreshold {
			slog.Info("news event heating up",
				slog.String("symbol", symbol),
				slog.String("title", eval.title),
				slog.Float64("total_z", eval.totalZ))
		}

		if intent, ok := d.maybeTrigger(ctx, symbol, eval); ok {
			emitted = append(emitted, intent)
		}
	}

	// Removal pass: expiry decisions were computed before iteration began.
	for _, symbol := range expired {
		d.expire(ctx, symbol)
	}

	return emitted
}

// evaluate scores one live event. The window and statistics are copied out
// under their own locks first; only then is the event mutated.
func (d *Decider) evaluate(symbol string) (evaluation, bool) {
	window, ok := d.windows.Snapshot(symbol)
	if !ok {
		return evaluation{}, false
	}
	statsCopy, ok := d.stats.Snapshot(symbol)
	if !ok {
		return evaluation{}, false
	}

	var eval evaluation
	applied := d.news.Apply(symbol, func(ev *domain.NewsEvent) {
		if window.TradeCount > 0 {
			price := window.AveragePrice()
			if !math.IsNaN(price) && !math.IsInf(price, 0) {
				// First valid observation anchors the baseline, once.
				if ev.BaselinePrice == 0 {
					ev.BaselinePrice = price
					slog.Info("baseline price set",
						slog.String("symbol", symbol),
						slog.Float64("price", price))
				}
				diff := (price - ev.BaselinePrice) / ev.BaselinePrice
				if diff > ev.MaxPriceDiffPos {
					ev.MaxPriceDiffPos = diff
				}
				if diff < ev.MaxPriceDiffNeg {
					ev.MaxPriceDiffNeg = diff
				}
				eval.currentPrice = price
			}
		}

		for m := domain.Metric(0); m < domain.MetricCount; m++ {
			z := statsCopy.Stat(m).ZScore(window.Metric(m))
			if z > ev.MaxZScores[m] {
				ev.MaxZScores[m] = z
			}
		}

		eval.totalZ = ev.TotalZScore()
		eval.baseline = ev.BaselinePrice
		eval.title = ev.Title
		eval.newsID = ev.NewsID
		eval.snapshot = *ev
	})
	return eval, applied
}

// maybeTrigger emits at most one intent per cooldown window. A dispatch
// failure is logged but neither retried nor allowed to revoke the cooldown:
// the engine is a one-shot trigger, not a transactional order placer.
func (d *Decider) maybeTrigger(ctx context.Context, symbol string, eval evaluation) (domain.OrderIntent, bool) {
	if eval.totalZ <= d.cfg.TriggerThreshold {
		return domain.OrderIntent{}, false
	}
	if eval.currentPrice <= 0 || eval.baseline <= 0 {
		// No tradable price this window; wait for the next tick.
		return domain.OrderIntent{}, false
	}
	if !d.cooldowns.TryAcquire(symbol, d.now(), d.cfg.Cooldown) {
		return domain.OrderIntent{}, false
	}

	intent := d.buildIntent(symbol, eval)

	slog.Info("trade trigger",
		slog.String("symbol", symbol),
		slog.String("side", string(intent.Side)),
		slog.Float64("total_z", eval.totalZ),
		slog.Float64("price", intent.Price),
		slog.String("title", eval.title))

	if d.gate != nil {
		if err := d.gate.Submit(ctx, intent); err != nil {
			slog.Error("order dispatch failed",
				slog.String("symbol", symbol),
				slog.Any("error", err))
		}
	}
	if d.log != nil {
		if err := d.log.RecordTrigger(ctx, intent, eval.snapshot); err != nil {
			slog.Warn("failed to record trigger", slog.Any("error", err))
		}
	}
	return intent, true
}

// buildIntent rounds the entry to the symbol's price precision and places
// the stop and target as direction-aware percentage bands around it.
func (d *Decider) buildIntent(symbol string, eval evaluation) domain.OrderIntent {
	side := domain.SideBuy
	if eval.currentPrice < eval.baseline {
		side = domain.SideSell
	}

	price := domain.RoundPrice(symbol, eval.currentPrice)

	var slPrice, tpPrice float64
	if side == domain.SideBuy {
		slPrice = price * (1 - d.cfg.StopLossPct)
		tpPrice = price * (1 + d.cfg.TakeProfitPct)
	} else {
		slPrice = price * (1 + d.cfg.StopLossPct)
		tpPrice = price * (1 - d.cfg.TakeProfitPct)
	}

	qty := domain.RoundQty(symbol, d.cfg.NotionalUSDT/price*float64(d.cfg.Leverage))

	return domain.OrderIntent{
		Symbol:          symbol,
		Side:            side,
		OrderType:       "LIMIT",
		Price:           price,
		Quantity:        qty,
		Leverage:        d.cfg.Leverage,
		StopLossPrice:   domain.RoundPrice(symbol, slPrice),
		TakeProfitPrice: domain.RoundPrice(symbol, tpPrice),
		NewsID:          eval.newsID,
		ZScore:          eval.totalZ,
	}
}

// expire exports and deletes one event whose TTL passed without a trigger.
func (d *Decider) expire(ctx context.Context, symbol string) {
	ev, ok := d.news.Remove(symbol)
	if !ok {
		return
	}

	slog.Info("news event expired",
		slog.String("symbol", symbol),
		slog.String("title", ev.Title),
		slog.Float64("total_z", ev.TotalZScore()),
		slog.Int("occurrences", ev.OccurrenceCount))

	if d.exporter != nil {
		if err := d.exporter.ExportNewsEvent(ev); err != nil {
			slog.Warn("failed to export news event",
				slog.String("symbol", symbol),
				slog.Any("error", err))
		}
	}
	if d.log != nil {
		if err := d.log.RecordExpiry(ctx, ev); err != nil {
			slog.Warn("failed to record expiry", slog.Any("error", err))
		}
	}
}
