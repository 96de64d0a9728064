package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DUGOUT_API_URL", "")
	t.Setenv("DUGOUT_DB_URL", "")
	t.Setenv("DUGOUT_LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("base url = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.Storage.ConnectionString != "" {
		t.Errorf("expected empty connection string, got %q", cfg.Storage.ConnectionString)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	t.Setenv("DUGOUT_DB_URL", "")
	t.Setenv("DEV_MODE", "")
	t.Setenv("DUGOUT_LOG_LEVEL", "debug")
	t.Setenv("DUGOUT_API_URL", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "https://api.example.com"

[storage]
connection_string = "file:/tmp/dugout.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.Storage.ConnectionString != "file:/tmp/dugout.db" {
		t.Errorf("connection string = %q", cfg.Storage.ConnectionString)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("env override not applied, level = %q", cfg.Log.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Log.Format != "text" {
		t.Errorf("log format = %q, want text", cfg.Log.Format)
	}
}

func TestLoadFrom_DevMode(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("DUGOUT_DB_URL", "libsql://remote.example.com")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.ConnectionString != devConnection {
		t.Errorf("DEV_MODE should force %q, got %q", devConnection, cfg.Storage.ConnectionString)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[api\nbase_url ="), 0644)

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	t.Setenv("DUGOUT_API_URL", "")
	t.Setenv("DUGOUT_DB_URL", "")
	t.Setenv("DUGOUT_LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.API.BaseURL = "http://coach.local:8080"

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.API.BaseURL != "http://coach.local:8080" {
		t.Errorf("base url = %q", loaded.API.BaseURL)
	}
}

func TestReadFile_IgnoresEnvironment(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("DUGOUT_API_URL", "http://override:9000")
	t.Setenv("DUGOUT_LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[log]\nformat = \"json\"\n"), 0644)

	cfg, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != DefaultBaseURL || cfg.Storage.ConnectionString != "" || cfg.Log.Level != "warn" {
		t.Errorf("environment leaked into file config: %+v", cfg)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("file value lost, format = %q", cfg.Log.Format)
	}
}
