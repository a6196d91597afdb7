package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Server.Port", cfg.Server.Port, "8080"},
		{"Server.ReadTimeout", cfg.Server.ReadTimeout, 10 * time.Second},
		{"Server.ShutdownTimeout", cfg.Server.ShutdownTimeout, 10 * time.Second},
		{"Server.MaxBodyBytes", cfg.Server.MaxBodyBytes, int64(5 << 20)},
		{"Fetch.Interval", cfg.Fetch.Interval, 5 * time.Minute},
		{"Fetch.Timeout", cfg.Fetch.Timeout, 15 * time.Second},
		{"Fetch.Retries", cfg.Fetch.Retries(), 2},
		{"Fetch.UserAgent", cfg.Fetch.UserAgent, "feedbridge/1.0"},
		{"Log.Level", cfg.Log.Level, "info"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestSetDefaults_DoesNotOverride(t *testing.T) {
	retries := 5
	cfg := &Config{
		Server: ServerConfig{Port: "9090"},
		Fetch:  FetchConfig{Interval: time.Minute, RetryCount: &retries},
		Log:    LogConfig{Level: "debug"},
	}
	setDefaults(cfg)

	if cfg.Server.Port != "9090" {
		t.Errorf("Port should not be overridden: got %s", cfg.Server.Port)
	}
	if cfg.Fetch.Interval != time.Minute {
		t.Errorf("Interval should not be overridden: got %v", cfg.Fetch.Interval)
	}
	if cfg.Fetch.Retries() != 5 {
		t.Errorf("RetryCount should not be overridden: got %d", cfg.Fetch.Retries())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level should not be overridden: got %s", cfg.Log.Level)
	}
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FEEDBRIDGE_TEST_URL", "https://example.com/rss")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "feedbridge.yaml")
	content := `
server:
  port: "7070"
fetch:
  interval: 30s
log:
  level: warn
seeds:
  - name: Example
    url: ${FEEDBRIDGE_TEST_URL}
    format: rss
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port: got %s", cfg.Server.Port)
	}
	if cfg.Fetch.Interval != 30*time.Second {
		t.Errorf("interval: got %v", cfg.Fetch.Interval)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level: got %s", cfg.Log.Level)
	}
	if len(cfg.Seeds) != 1 || cfg.Seeds[0].URL != "https://example.com/rss" {
		t.Fatalf("seeds: got %+v", cfg.Seeds)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port, got %s", cfg.Server.Port)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "6060")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "feedbridge.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"7070\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "6060" || cfg.Log.Level != "error" {
		t.Fatalf("env should override file, got port=%s level=%s", cfg.Server.Port, cfg.Log.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_ZeroRetriesDisablesRetry(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "feedbridge.yaml")
	if err := os.WriteFile(path, []byte("fetch:\n  retry_count: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fetch.RetryCount == nil || cfg.Fetch.Retries() != 0 {
		t.Fatalf("expected retries disabled, got %v", cfg.Fetch.RetryCount)
	}
}
