package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the server looks for its YAML config unless
// overridden by the -config flag.
const DefaultConfigPath = "config.yml"

// Load reads and validates the YAML config file, falling back to env vars
// and defaults for anything the file leaves unset.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// No config file is fine for dev; env vars and defaults apply.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Port <= 0 {
		cfg.Port = 3000
	}
	if cfg.PlatformDomain == "" {
		return nil, fmt.Errorf("platform_domain is required")
	}
	if cfg.DSN == "" {
		cfg.DSN = BuildDSN(cfg.Database)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	return cfg, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		Port:           3000,
		Env:            "development",
		PlatformDomain: "pagelift.site",
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("PAGELIFT_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("PAGELIFT_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("PAGELIFT_PLATFORM_DOMAIN"); v != "" {
		cfg.PlatformDomain = v
	}
	if v := os.Getenv("PAGELIFT_ENV"); v != "" {
		cfg.Env = v
	}
}
