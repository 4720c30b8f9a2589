package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
environment: test
server:
  port: 8080
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 10s
ledger:
  base_url: http://ledger.local:9000
  timeout: 3s
  fetch_limit: 50
  recent_limit: 5
  activity_days: 7
cache:
  ttl: 15s
`

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "test" {
		t.Fatalf("environment = %q", cfg.Environment)
	}
	if cfg.Ledger.BaseURL != "http://ledger.local:9000" {
		t.Fatalf("ledger base url = %q", cfg.Ledger.BaseURL)
	}
	if cfg.Ledger.Timeout != 3*time.Second {
		t.Fatalf("ledger timeout = %v", cfg.Ledger.Timeout)
	}
	if cfg.Ledger.ActivityDays != 7 {
		t.Fatalf("activity days = %d", cfg.Ledger.ActivityDays)
	}
}

func TestLoadMissingLedgerURL(t *testing.T) {
	body := "environment: test\n"
	if _, err := Load(writeTempConfig(t, body)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidateDefaults(t *testing.T) {
	var c Config
	c.Environment = "test"
	c.Ledger.BaseURL = "http://ledger.local"
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.Ledger.FetchLimit != 50 || c.Ledger.RecentLimit != 5 || c.Ledger.ActivityDays != 7 {
		t.Fatalf("defaults not applied: %+v", c.Ledger)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("LEDGER_BASE_URL", "http://override:9100")
	t.Setenv("PORT", "9999")

	cfg, err := LoadWithEnv(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.Ledger.BaseURL != "http://override:9100" {
		t.Fatalf("env override ignored: %q", cfg.Ledger.BaseURL)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("port override ignored: %d", cfg.Server.Port)
	}
}
