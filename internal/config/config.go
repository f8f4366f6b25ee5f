// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every setting the two binaries read. Which fields are
// mandatory depends on the binary; validation happens at the call site.
type Config struct {
	// TelegramToken authenticates the bot against the Telegram API.
	TelegramToken string
	// CatalogPath is the locally cached global-emote file, read once at
	// startup by the bot and overwritten by the refresh job.
	CatalogPath string

	ResultLimit     int
	ProviderTimeout time.Duration

	// Endpoint overrides, primarily for tests and mirrors. Empty picks
	// the public endpoints.
	BTTVBaseURL   string
	SevenTVGQLURL string

	// MetricsAddr is the ops server listen address; empty disables it.
	MetricsAddr string

	// RefreshSchedule is a cron expression. When set, the refresh job
	// runs as a daemon instead of one-shot.
	RefreshSchedule string
}

const (
	defaultResultLimit       = 50
	defaultProviderTimeoutMS = 5000
	defaultMetricsAddr       = ":9091"
)

// Load reads configuration from the environment.
func Load() Config {
	cfg := Config{
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		CatalogPath:     strings.TrimSpace(os.Getenv("GLOBAL_EMOTES")),
		ResultLimit:     readInt("EMOTEBOT_RESULT_LIMIT", defaultResultLimit),
		ProviderTimeout: time.Duration(readInt("EMOTEBOT_PROVIDER_TIMEOUT_MS", defaultProviderTimeoutMS)) * time.Millisecond,
		BTTVBaseURL:     strings.TrimSpace(os.Getenv("EMOTEBOT_BTTV_API_URL")),
		SevenTVGQLURL:   strings.TrimSpace(os.Getenv("EMOTEBOT_SEVENTV_GQL_URL")),
		RefreshSchedule: strings.TrimSpace(os.Getenv("EMOTEBOT_REFRESH_SCHEDULE")),
	}

	cfg.MetricsAddr = defaultMetricsAddr
	if v, ok := os.LookupEnv("EMOTEBOT_METRICS_ADDR"); ok {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}

	return cfg
}

func readInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
