package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_SECRET_KEY", "env-secret")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Binance.APIKey != "env-key" || cfg.Binance.SecretKey != "env-secret" {
		t.Fatalf("credentials not read from environment: %+v", cfg.Binance)
	}
	if cfg.Server.Listen != ":9090" {
		t.Fatalf("listen = %q", cfg.Server.Listen)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "k")
	t.Setenv("BINANCE_SECRET_KEY", "s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Fatalf("default listen = %q", cfg.Server.Listen)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("default log config = %+v", cfg.Log)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "")
	t.Setenv("BINANCE_SECRET_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for missing credentials")
	}
	if !strings.Contains(err.Error(), "BINANCE_API_KEY") {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("BINANCE_API_KEY", "k")
	_, err = Load()
	if err == nil || !strings.Contains(err.Error(), "BINANCE_SECRET_KEY") {
		t.Fatalf("expected missing secret error, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "")
	t.Setenv("BINANCE_SECRET_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `binance:
  api_key: file-key
  secret_key: file-secret
server:
  listen: ":7070"
log:
  level: warn
  format: json
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Binance.APIKey != "file-key" || cfg.Binance.SecretKey != "file-secret" {
		t.Fatalf("credentials not read from file: %+v", cfg.Binance)
	}
	if cfg.Server.Listen != ":7070" || cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_SECRET_KEY", "env-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `binance:
  api_key: file-key
  secret_key: file-secret
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Binance.APIKey != "env-key" {
		t.Fatalf("environment should win over file, got %q", cfg.Binance.APIKey)
	}
}
