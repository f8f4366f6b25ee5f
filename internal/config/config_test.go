package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("GLOBAL_EMOTES", "")
	t.Setenv("EMOTEBOT_RESULT_LIMIT", "")
	t.Setenv("EMOTEBOT_PROVIDER_TIMEOUT_MS", "")

	cfg := Load()
	if cfg.ResultLimit != 50 {
		t.Errorf("ResultLimit = %d, want 50", cfg.ResultLimit)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Errorf("ProviderTimeout = %v, want 5s", cfg.ProviderTimeout)
	}
	if cfg.MetricsAddr != ":9091" {
		t.Errorf("MetricsAddr = %q, want :9091", cfg.MetricsAddr)
	}
	if cfg.BTTVBaseURL != "" || cfg.SevenTVGQLURL != "" {
		t.Errorf("endpoint overrides should default empty: %q %q", cfg.BTTVBaseURL, cfg.SevenTVGQLURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", " 123:abc ")
	t.Setenv("GLOBAL_EMOTES", "/var/lib/emotebot/global.json")
	t.Setenv("EMOTEBOT_RESULT_LIMIT", "10")
	t.Setenv("EMOTEBOT_PROVIDER_TIMEOUT_MS", "1500")
	t.Setenv("EMOTEBOT_BTTV_API_URL", "http://127.0.0.1:8080")
	t.Setenv("EMOTEBOT_METRICS_ADDR", ":9999")
	t.Setenv("EMOTEBOT_REFRESH_SCHEDULE", "0 4 * * *")

	cfg := Load()
	if cfg.TelegramToken != "123:abc" {
		t.Errorf("TelegramToken = %q (should be trimmed)", cfg.TelegramToken)
	}
	if cfg.CatalogPath != "/var/lib/emotebot/global.json" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.ResultLimit != 10 {
		t.Errorf("ResultLimit = %d, want 10", cfg.ResultLimit)
	}
	if cfg.ProviderTimeout != 1500*time.Millisecond {
		t.Errorf("ProviderTimeout = %v, want 1.5s", cfg.ProviderTimeout)
	}
	if cfg.BTTVBaseURL != "http://127.0.0.1:8080" {
		t.Errorf("BTTVBaseURL = %q", cfg.BTTVBaseURL)
	}
	if cfg.MetricsAddr != ":9999" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr)
	}
	if cfg.RefreshSchedule != "0 4 * * *" {
		t.Errorf("RefreshSchedule = %q", cfg.RefreshSchedule)
	}
}

func TestLoadMetricsDisabled(t *testing.T) {
	t.Setenv("EMOTEBOT_METRICS_ADDR", "")

	if cfg := Load(); cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty (disabled)", cfg.MetricsAddr)
	}
}

func TestLoadBadIntsFallBack(t *testing.T) {
	t.Setenv("EMOTEBOT_RESULT_LIMIT", "banana")
	t.Setenv("EMOTEBOT_PROVIDER_TIMEOUT_MS", "-3")

	cfg := Load()
	if cfg.ResultLimit != 50 {
		t.Errorf("ResultLimit = %d, want fallback 50", cfg.ResultLimit)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Errorf("ProviderTimeout = %v, want fallback 5s", cfg.ProviderTimeout)
	}
}
