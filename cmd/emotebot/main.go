package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"emotebot/internal/app"
	"emotebot/internal/config"
	"emotebot/internal/emote"
	"emotebot/internal/httpapi"
	"emotebot/internal/metrics"
	"emotebot/internal/provider"
	"emotebot/internal/provider/bttv"
	"emotebot/internal/provider/seventv"
	"emotebot/internal/search"
)

func main() {
	logger := log.New(os.Stderr)

	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not load .env", "err", err)
		}
	}

	cfg := config.Load()
	if cfg.CatalogPath == "" {
		logger.Fatal("GLOBAL_EMOTES is required")
	}

	// A missing or corrupt baseline catalog is fatal: the bot must not
	// serve without it.
	catalog, err := emote.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("failed to load global emote catalog", "err", err)
	}
	logger.Info("global emote catalog loaded", "emotes", len(catalog))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	m.SetCatalogSize(len(catalog))

	// Provider order is the de facto result ranking; keep it stable.
	providers := []provider.Searcher{
		bttv.New(cfg.BTTVBaseURL),
		seventv.New(cfg.SevenTVGQLURL),
	}
	aggregator := search.New(providers, catalog, search.Config{
		Limit:   cfg.ResultLimit,
		Timeout: cfg.ProviderTimeout,
		Logger:  logger.With("component", "search"),
		Metrics: m,
	})

	botApp, err := app.New(app.Config{TelegramToken: cfg.TelegramToken}, aggregator, logger.With("component", "bot"))
	if err != nil {
		logger.Fatal("failed to initialise application", "err", err)
	}

	if cfg.MetricsAddr != "" {
		ops := httpapi.New(cfg.MetricsAddr, m, logger.With("component", "httpapi"))
		go func() {
			if err := ops.Run(ctx); err != nil {
				logger.Error("ops server stopped", "err", err)
			}
		}()
	}

	logger.Info("emote bot is running")
	if err := botApp.Run(ctx); err != nil {
		logger.Fatal("bot stopped with error", "err", err)
	}
}
