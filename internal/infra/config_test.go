package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearSecretEnv(t *testing.T) {
	t.Setenv("NEWS_BINANCE_KEY", "")
	t.Setenv("NEWS_BINANCE_SECRET", "")
	t.Setenv("NEWS_TRADING_MODE", "")
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearSecretEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Engine.TriggerThreshold != 100.0 {
		t.Errorf("trigger threshold = %v", cfg.Engine.TriggerThreshold)
	}
	if cfg.Trading.Mode != "paper" {
		t.Errorf("mode = %q, want paper", cfg.Trading.Mode)
	}
	if cfg.RollInterval() != 5*time.Second {
		t.Errorf("roll interval = %v", cfg.RollInterval())
	}
	if cfg.DecisionInterval() != 500*time.Millisecond {
		t.Errorf("decision interval = %v", cfg.DecisionInterval())
	}
	if cfg.CooldownDuration() != 30*time.Minute {
		t.Errorf("cooldown = %v", cfg.CooldownDuration())
	}
	if cfg.MentionTTL() != time.Minute {
		t.Errorf("mention ttl = %v", cfg.MentionTTL())
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	clearSecretEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
engine:
  trigger_threshold: 42.5
  cooldown_minutes: 10
news:
  mention_ttl_sec: 120
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Engine.TriggerThreshold != 42.5 {
		t.Errorf("trigger threshold = %v", cfg.Engine.TriggerThreshold)
	}
	if cfg.CooldownDuration() != 10*time.Minute {
		t.Errorf("cooldown = %v", cfg.CooldownDuration())
	}
	if cfg.MentionTTL() != 2*time.Minute {
		t.Errorf("mention ttl = %v", cfg.MentionTTL())
	}
	// Untouched fields keep their defaults.
	if cfg.Engine.DecisionIntervalMS != 500 {
		t.Errorf("decision interval = %d", cfg.Engine.DecisionIntervalMS)
	}
}

func TestLoadConfig_EnvOverridesSecrets(t *testing.T) {
	clearSecretEnv(t)
	t.Setenv("NEWS_BINANCE_KEY", "env-key")
	t.Setenv("NEWS_BINANCE_SECRET", "env-secret")
	t.Setenv("NEWS_TRADING_MODE", "live")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Binance.APIKey != "env-key" || cfg.Binance.APISecret != "env-secret" {
		t.Errorf("secrets not taken from environment")
	}
	if cfg.Trading.Mode != "live" {
		t.Errorf("mode = %q, want live", cfg.Trading.Mode)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad binance ws url", func(c *Config) { c.Binance.WSURL = "http://not-ws" }},
		{"bad news ws url", func(c *Config) { c.News.WSURL = "" }},
		{"zero roll interval", func(c *Config) { c.Engine.RollIntervalSec = 0 }},
		{"zero decision interval", func(c *Config) { c.Engine.DecisionIntervalMS = 0 }},
		{"negative threshold", func(c *Config) { c.Engine.TriggerThreshold = -1 }},
		{"zero leverage", func(c *Config) { c.Binance.Leverage = 0 }},
		{"zero notional", func(c *Config) { c.Binance.NotionalUSDT = 0 }},
		{"unknown mode", func(c *Config) { c.Trading.Mode = "dry-run" }},
		{"live without credentials", func(c *Config) { c.Trading.Mode = "live" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("default config invalid: %v", err)
		}
	})

	t.Run("live with credentials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Trading.Mode = "live"
		cfg.Binance.APIKey = "k"
		cfg.Binance.APISecret = "s"
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
