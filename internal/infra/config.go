package infra

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the process. Secrets are overridden from
// environment variables after the file is parsed; keys in the file itself
// only earn a warning.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Binance struct {
		WSURL        string  `yaml:"ws_url"`
		RestURL      string  `yaml:"rest_url"`
		APIKey       string  `yaml:"api_key"`
		APISecret    string  `yaml:"api_secret"`
		Leverage     int     `yaml:"leverage"`
		NotionalUSDT float64 `yaml:"notional_usdt"`
	} `yaml:"binance"`

	News struct {
		WSURL           string `yaml:"ws_url"`
		PingIntervalSec int    `yaml:"ping_interval_sec"`
		MentionTTLSec   int    `yaml:"mention_ttl_sec"`
	} `yaml:"news"`

	Engine struct {
		RollIntervalSec    int     `yaml:"roll_interval_sec"`
		DecisionIntervalMS int     `yaml:"decision_interval_ms"`
		TriggerThreshold   float64 `yaml:"trigger_threshold"`
		CooldownMinutes    int     `yaml:"cooldown_minutes"`
	} `yaml:"engine"`

	Trading struct {
		Mode string `yaml:"mode"` // "paper" or "live"
	} `yaml:"trading"`

	Storage struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the production defaults. Every field can be
// overridden by the config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "news-trading"
	cfg.App.Version = "dev"
	cfg.Binance.WSURL = "wss://stream.binance.com:443"
	cfg.Binance.RestURL = "https://fapi.binance.com"
	cfg.Binance.Leverage = 5
	cfg.Binance.NotionalUSDT = 200.0
	cfg.News.WSURL = "wss://news.treeofalpha.com/ws"
	cfg.News.PingIntervalSec = 20
	cfg.News.MentionTTLSec = 60
	cfg.Engine.RollIntervalSec = 5
	cfg.Engine.DecisionIntervalMS = 500
	cfg.Engine.TriggerThreshold = 100.0
	cfg.Engine.CooldownMinutes = 30
	cfg.Trading.Mode = "paper"
	cfg.Storage.DataDir = "_workspace"
	cfg.Logging.Level = "info"
	return cfg
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// is not fatal: defaults apply and secrets must come from the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		fmt.Printf("config file %s not found, using defaults\n", path)
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if !hasWSScheme(c.Binance.WSURL) {
		return fmt.Errorf("invalid Binance WS URL: %s", c.Binance.WSURL)
	}
	if !hasWSScheme(c.News.WSURL) {
		return fmt.Errorf("invalid news WS URL: %s", c.News.WSURL)
	}
	if c.Engine.RollIntervalSec <= 0 {
		return fmt.Errorf("roll interval must be positive")
	}
	if c.Engine.DecisionIntervalMS <= 0 {
		return fmt.Errorf("decision interval must be positive")
	}
	if c.Engine.TriggerThreshold <= 0 {
		return fmt.Errorf("trigger threshold must be positive")
	}
	if c.Binance.Leverage <= 0 {
		return fmt.Errorf("leverage must be positive")
	}
	if c.Binance.NotionalUSDT <= 0 {
		return fmt.Errorf("notional must be positive")
	}
	mode := strings.ToLower(c.Trading.Mode)
	if mode != "paper" && mode != "live" {
		return fmt.Errorf("unknown trading mode: %s", c.Trading.Mode)
	}
	if mode == "live" && (c.Binance.APIKey == "" || c.Binance.APISecret == "") {
		return fmt.Errorf("live mode requires NEWS_BINANCE_KEY and NEWS_BINANCE_SECRET")
	}
	return nil
}

// RollInterval returns the window-roll period.
func (c *Config) RollInterval() time.Duration {
	return time.Duration(c.Engine.RollIntervalSec) * time.Second
}

// DecisionInterval returns the decision-tick period.
func (c *Config) DecisionInterval() time.Duration {
	return time.Duration(c.Engine.DecisionIntervalMS) * time.Millisecond
}

// CooldownDuration returns how long a triggered symbol stays locked.
func (c *Config) CooldownDuration() time.Duration {
	return time.Duration(c.Engine.CooldownMinutes) * time.Minute
}

// MentionTTL returns the news-event time-to-live per mention.
func (c *Config) MentionTTL() time.Duration {
	return time.Duration(c.News.MentionTTLSec) * time.Second
}

// PingInterval returns the news keep-alive period.
func (c *Config) PingInterval() time.Duration {
	return time.Duration(c.News.PingIntervalSec) * time.Second
}

func hasWSScheme(u string) bool {
	return strings.HasPrefix(u, "ws://") || strings.HasPrefix(u, "wss://")
}

// overrideWithEnv applies environment variables on top of the file.
// Environment always wins for secrets.
func overrideWithEnv(cfg *Config) {
	if cfg.Binance.APIKey != "" || cfg.Binance.APISecret != "" {
		fmt.Println("SECURITY WARNING: API secrets found in config file.")
		fmt.Println("  Prefer environment variables: NEWS_BINANCE_KEY, NEWS_BINANCE_SECRET")
	}

	if key := os.Getenv("NEWS_BINANCE_KEY"); key != "" {
		cfg.Binance.APIKey = key
	}
	if secret := os.Getenv("NEWS_BINANCE_SECRET"); secret != "" {
		cfg.Binance.APISecret = secret
	}
	if mode := os.Getenv("NEWS_TRADING_MODE"); mode != "" {
		cfg.Trading.Mode = mode
	}
}
