// Command emotefetch refreshes the cached global-emote catalog the bot
// loads at startup. One-shot by default; EMOTEBOT_REFRESH_SCHEDULE
// turns it into a cron-scheduled daemon.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"emotebot/internal/config"
	"emotebot/internal/provider/bttv"
	"emotebot/internal/refresh"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := refresh.NewJob(bttv.New(cfg.BTTVBaseURL), cfg.CatalogPath, logger)

	if cfg.RefreshSchedule != "" {
		logger.Info("refreshing on schedule", "schedule", cfg.RefreshSchedule, "path", cfg.CatalogPath)
		if err := job.RunScheduled(ctx, cfg.RefreshSchedule); err != nil {
			logger.Fatal("scheduler stopped", "err", err)
		}
		return
	}

	if err := job.Run(ctx); err != nil {
		logger.Fatal("refresh failed", "err", err)
	}
}
