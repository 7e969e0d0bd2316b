// Package config loads runtime settings for the roamly CLI and gateway
// from an optional YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI and gateway need to reach the platform.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Gateway GatewayConfig `yaml:"gateway"`
	Cache   CacheConfig   `yaml:"cache"`
	Uploads UploadsConfig `yaml:"uploads"`
}

// APIConfig points the client at the platform backend. Timeout is
// derived from TimeoutSec after loading.
type APIConfig struct {
	URL        string        `yaml:"url"`
	TimeoutSec int           `yaml:"timeoutSec"`
	Timeout    time.Duration `yaml:"-"`
}

// GatewayConfig configures the local credential-forwarding gateway.
type GatewayConfig struct {
	Addr       string `yaml:"addr"`
	BackendURL string `yaml:"backendUrl"`
}

// CacheConfig tunes the read cache for public listings.
type CacheConfig struct {
	Disabled bool `yaml:"disabled"`
	TTLSec   int  `yaml:"ttlSec"`
	MaxSize  int  `yaml:"maxSize"`
}

// UploadsConfig points at the image hosting service used for profile
// pictures and travel plan photos.
type UploadsConfig struct {
	URL    string `yaml:"url"`
	Preset string `yaml:"preset"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		API: APIConfig{
			URL:     "http://localhost:3000/api",
			Timeout: 30 * time.Second,
		},
		Gateway: GatewayConfig{
			Addr: ":8080",
		},
		Cache: CacheConfig{
			TTLSec:  60,
			MaxSize: 200,
		},
	}
}

// Load reads the YAML file at path when it exists, then applies
// environment overrides. An empty path skips the file step entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing files fall back to defaults plus environment.
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.API.TimeoutSec > 0 {
		cfg.API.Timeout = time.Duration(cfg.API.TimeoutSec) * time.Second
	}

	if cfg.API.URL == "" {
		return Config{}, fmt.Errorf("api.url must not be empty")
	}
	if cfg.Gateway.Addr == "" {
		return Config{}, fmt.Errorf("gateway.addr must not be empty")
	}
	if cfg.Cache.TTLSec <= 0 {
		return Config{}, fmt.Errorf("cache.ttlSec must be > 0")
	}
	if cfg.Cache.MaxSize <= 0 {
		return Config{}, fmt.Errorf("cache.maxSize must be > 0")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.API.URL = getEnv("ROAMLY_API_URL", cfg.API.URL)
	cfg.API.TimeoutSec = getEnvInt("ROAMLY_API_TIMEOUT_SEC", cfg.API.TimeoutSec)
	cfg.Gateway.Addr = getEnv("ROAMLY_GATEWAY_ADDR", cfg.Gateway.Addr)
	cfg.Gateway.BackendURL = getEnv("ROAMLY_BACKEND_URL", cfg.Gateway.BackendURL)
	cfg.Cache.TTLSec = getEnvInt("ROAMLY_CACHE_TTL_SEC", cfg.Cache.TTLSec)
	cfg.Cache.MaxSize = getEnvInt("ROAMLY_CACHE_MAX_SIZE", cfg.Cache.MaxSize)
	cfg.Uploads.URL = getEnv("ROAMLY_UPLOAD_URL", cfg.Uploads.URL)
	cfg.Uploads.Preset = getEnv("ROAMLY_UPLOAD_PRESET", cfg.Uploads.Preset)

	if raw, ok := os.LookupEnv("ROAMLY_CACHE_DISABLED"); ok && raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Cache.Disabled = v
		}
	}
}

func getEnv(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
