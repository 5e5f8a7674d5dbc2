package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benedictmc/news-trading/internal/domain"
	"github.com/benedictmc/news-trading/internal/execution"
	"github.com/benedictmc/news-trading/internal/infra"
	"github.com/benedictmc/news-trading/internal/infra/binance"
	"github.com/benedictmc/news-trading/internal/market"
	"github.com/benedictmc/news-trading/internal/storage"
)

// Bootstrap performs the startup sequence and owns the long-lived wiring:
// config, tables, storage, and the dispatch gate. Tables live for the
// process lifetime; there is no shutdown beyond closing the store.
type Bootstrap struct {
	Config    *infra.Config
	Windows   *market.WindowTable
	Stats     *market.StatsTable
	News      *market.NewsStore
	Cooldowns *market.CooldownRegistry
	Gate      execution.Gate
	Exporter  *storage.SnapshotWriter
	Triggers  *storage.TriggerStore

	signer *binance.Signer
}

// NewBootstrap creates an uninitialized bootstrap.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration and creates every shared table and store.
// Configuration errors here are the only fatal condition in the system.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err
	}
	b.Config = cfg

	slog.SetDefault(infra.NewLogger(cfg))
	slog.Info("bootstrapping news-trading",
		slog.String("version", cfg.App.Version),
		slog.String("mode", cfg.Trading.Mode),
		slog.Int("symbols", len(domain.TrackedSymbols)))

	dataDir := cfg.Storage.DataDir
	if err := infra.EnsureDir(dataDir); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	// One window and one statistics record per tracked symbol, created up
	// front and never removed.
	b.Windows = market.NewWindowTable(domain.TrackedSymbols)
	b.Stats = market.NewStatsTable(domain.TrackedSymbols)
	b.News = market.NewNewsStore()
	b.Cooldowns = market.NewCooldownRegistry()

	b.Exporter = storage.NewSnapshotWriter(filepath.Join(dataDir, "news_events"))

	triggers, err := storage.NewTriggerStore(filepath.Join(dataDir, "triggers.db"))
	if err != nil {
		return err
	}
	b.Triggers = triggers
	slog.Info("trigger store initialized", slog.String("path", filepath.Join(dataDir, "triggers.db")))

	if strings.ToLower(cfg.Trading.Mode) == "live" {
		b.signer = binance.NewSigner(cfg.Binance.APIKey, cfg.Binance.APISecret)
		b.Gate = binance.NewFuturesClient(cfg.Binance.RestURL, b.signer)
		slog.Info("live dispatch gate armed", slog.String("rest_url", cfg.Binance.RestURL))
	} else {
		b.Gate = execution.NewMockGate()
		slog.Info("paper dispatch gate in use")
	}

	return nil
}

// DeciderConfig assembles the decision-task tunables from configuration.
func (b *Bootstrap) DeciderConfig() market.DeciderConfig {
	cfg := market.DefaultDeciderConfig()
	cfg.Interval = b.Config.DecisionInterval()
	cfg.TriggerThreshold = b.Config.Engine.TriggerThreshold
	cfg.Cooldown = b.Config.CooldownDuration()
	cfg.NotionalUSDT = b.Config.Binance.NotionalUSDT
	cfg.Leverage = b.Config.Binance.Leverage
	return cfg
}

// Close releases the bootstrap's resources.
func (b *Bootstrap) Close() {
	if b.Triggers != nil {
		if err := b.Triggers.Close(); err != nil {
			slog.Warn("failed to close trigger store", slog.Any("error", err))
		}
	}
	if b.signer != nil {
		b.signer.Wipe()
	}
}

// ResolveConfigPath returns the config file location: the NEWS_CONFIG
// environment variable when set, otherwise config.yaml next to the binary's
// working directory.
func ResolveConfigPath() string {
	if path := os.Getenv("NEWS_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}
