package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	devConnection  = "file:./dugout.db"
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

type StorageConfig struct {
	ConnectionString string `toml:"connection_string"` // Empty keeps the session in a TOML file.
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() *Config {
	return &Config{
		API: APIConfig{BaseURL: DefaultBaseURL},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Dir returns ~/.config/dugout.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dugout"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file, if there is one, then applies .env and
// environment overrides on top.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg.applyEnv()
	return cfg, nil
}

// ReadFile returns the defaults overlaid with the file at path, without any
// environment overrides. A missing file gives the defaults.
func ReadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DUGOUT_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("DUGOUT_DB_URL"); v != "" {
		c.Storage.ConnectionString = v
	}
	if v := os.Getenv("DUGOUT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		c.Storage.ConnectionString = devConnection
	}
}

// Write stores cfg at path, creating the parent directory.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
