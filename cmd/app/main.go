package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benedictmc/news-trading/internal/app"
	"github.com/benedictmc/news-trading/internal/domain"
	"github.com/benedictmc/news-trading/internal/infra/binance"
	"github.com/benedictmc/news-trading/internal/infra/treeofalpha"
	"github.com/benedictmc/news-trading/internal/market"
)

func main() {
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(app.ResolveConfigPath()); err != nil {
		slog.Error("bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer bootstrap.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := bootstrap.Config

	// Periodic tasks: the 5s window roller and the 500ms decision loop.
	roller := market.NewRoller(bootstrap.Windows, bootstrap.Stats, cfg.RollInterval())
	go roller.Run(ctx)

	decider := market.NewDecider(
		bootstrap.Windows,
		bootstrap.Stats,
		bootstrap.News,
		bootstrap.Cooldowns,
		bootstrap.Gate,
		bootstrap.Exporter,
		bootstrap.Triggers,
		bootstrap.DeciderConfig(),
	)
	go decider.Run(ctx)

	// Stream adapters: the high-frequency trade feed and the news feed.
	tradeWorker := binance.NewTradeWorker(cfg.Binance.WSURL, domain.TrackedSymbols, bootstrap.Windows)
	tradeWorker.Start(ctx)
	defer tradeWorker.Stop()
	slog.Info("trade feed started", slog.Int("symbols", len(domain.TrackedSymbols)))

	newsWorker := treeofalpha.NewNewsWorker(cfg.News.WSURL, cfg.PingInterval(), cfg.MentionTTL(), bootstrap.News)
	newsWorker.Start(ctx)
	defer newsWorker.Stop()
	slog.Info("news feed started", slog.String("url", cfg.News.WSURL))

	<-ctx.Done()
	slog.Info("shutting down")
}
