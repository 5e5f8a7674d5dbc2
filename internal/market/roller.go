package market

import (
	"context"
	"log/slog"
	"time"
)

// Roller periodically folds the trade windows into the statistics table and
// resets them. It is the only writer of the statistics table and runs as a
// single goroutine, never fanned out.
type Roller struct {
	windows  *WindowTable
	stats    *StatsTable
	interval time.Duration
}

// NewRoller wires the roll task. interval defaults to 5s when zero.
func NewRoller(windows *WindowTable, stats *StatsTable, interval time.Duration) *Roller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Roller{windows: windows, stats: stats, interval: interval}
}

// Run blocks until ctx is cancelled, rolling once per interval.
func (r *Roller) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("window roller started", slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Roll()
		}
	}
}

// Roll drains the windows and absorbs the copies into the statistics table.
// The two tables are touched strictly one after the other, never under both
// locks at once.
func (r *Roller) Roll() {
	drained := r.windows.Drain()
	r.stats.Absorb(drained)
}
