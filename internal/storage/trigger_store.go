package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/benedictmc/news-trading/internal/domain"

	_ "github.com/glebarez/go-sqlite"
)

// TriggerStore keeps a queryable record of every emitted order intent and
// every news event that expired without triggering. The console tooling
// reads these tables offline; the engine only ever appends.
type TriggerStore struct {
	db *sql.DB
}

// NewTriggerStore opens (or creates) the SQLite store with WAL mode enabled.
func NewTriggerStore(dbPath string) (*TriggerStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA cache_size=-2000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS triggers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL,
			side TEXT NOT NULL,
			price REAL NOT NULL,
			quantity REAL NOT NULL,
			leverage INTEGER NOT NULL,
			stop_loss_price REAL NOT NULL,
			take_profit_price REAL NOT NULL,
			news_id TEXT NOT NULL,
			news_title TEXT NOT NULL,
			z_score REAL NOT NULL,
			created_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create triggers table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS expired_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL,
			news_id TEXT NOT NULL,
			title TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			occurrence_count INTEGER NOT NULL,
			baseline_price REAL NOT NULL,
			max_price_diff_pos REAL NOT NULL,
			max_price_diff_neg REAL NOT NULL,
			total_z_score REAL NOT NULL,
			expired_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create expired_events table: %w", err)
	}

	return &TriggerStore{db: db}, nil
}

// RecordTrigger appends one emitted order intent.
func (s *TriggerStore) RecordTrigger(ctx context.Context, intent domain.OrderIntent, ev domain.NewsEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO triggers
		 (symbol, side, price, quantity, leverage, stop_loss_price, take_profit_price, news_id, news_title, z_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		intent.Symbol, string(intent.Side), intent.Price, intent.Quantity, intent.Leverage,
		intent.StopLossPrice, intent.TakeProfitPrice, intent.NewsID, ev.Title, intent.ZScore,
		time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trigger: %w", err)
	}
	return nil
}

// RecordExpiry appends one expired news event summary.
func (s *TriggerStore) RecordExpiry(ctx context.Context, ev domain.NewsEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expired_events
		 (symbol, news_id, title, started_at, occurrence_count, baseline_price, max_price_diff_pos, max_price_diff_neg, total_z_score, expired_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Symbol, ev.NewsID, ev.Title, ev.StartedAt.UnixMilli(), ev.OccurrenceCount,
		ev.BaselinePrice, ev.MaxPriceDiffPos, ev.MaxPriceDiffNeg, ev.TotalZScore(),
		time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expired event: %w", err)
	}
	return nil
}

// CountTriggers returns the number of recorded triggers.
func (s *TriggerStore) CountTriggers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM triggers").Scan(&n)
	return n, err
}

// Close closes the database connection.
func (s *TriggerStore) Close() error {
	return s.db.Close()
}
