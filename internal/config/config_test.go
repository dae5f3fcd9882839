package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000/api" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.RequestTimeout() != 15*time.Second {
		t.Fatalf("timeout = %v", cfg.RequestTimeout())
	}
	if cfg.Auth.TokenFile == "" {
		t.Fatal("token file default missing")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
api:
  base_url: https://lms.school.test/api
  timeout: 30s
logging:
  level: debug
  format: json
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "https://lms.school.test/api" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.RequestTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SCHOOLHUB_API_BASE_URL", "http://10.0.0.5:8000/api")
	t.Setenv("SCHOOLHUB_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "http://10.0.0.5:8000/api" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigRejectsBadBaseURL(t *testing.T) {
	t.Setenv("SCHOOLHUB_API_BASE_URL", "not a url")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected validation error")
	}
}
