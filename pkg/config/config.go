package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Ledger struct {
		BaseURL      string        `yaml:"base_url"`
		APIToken     string        `yaml:"api_token"`
		Timeout      time.Duration `yaml:"timeout"`
		FetchLimit   int           `yaml:"fetch_limit"`
		RecentLimit  int           `yaml:"recent_limit"`
		ActivityDays int           `yaml:"activity_days"`
	} `yaml:"ledger"`
	Cache struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Queue struct {
		Enabled    bool          `yaml:"enabled"`
		Workers    int           `yaml:"workers"`
		RetryLimit int           `yaml:"retry_limit"`
		RetryDelay time.Duration `yaml:"retry_delay"`
		KeyPrefix  string        `yaml:"key_prefix"`
	} `yaml:"queue"`
	RateLimit struct {
		MutationsPerMin float64 `yaml:"mutations_per_min"`
		Burst           float64 `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("LEDGER_BASE_URL"); v != "" {
		c.Ledger.BaseURL = v
	}
	if v := os.Getenv("LEDGER_API_TOKEN"); v != "" {
		c.Ledger.APIToken = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Server.Port = port
		}
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Ledger.BaseURL == "" {
		return fmt.Errorf("ledger.base_url is required")
	}
	if c.Ledger.FetchLimit <= 0 {
		c.Ledger.FetchLimit = 50
	}
	if c.Ledger.RecentLimit <= 0 {
		c.Ledger.RecentLimit = 5
	}
	if c.Ledger.ActivityDays <= 0 {
		c.Ledger.ActivityDays = 7
	}
	if c.Queue.Enabled && !c.Cache.Redis.Enabled {
		return fmt.Errorf("queue requires cache.redis to be enabled")
	}
	return nil
}
