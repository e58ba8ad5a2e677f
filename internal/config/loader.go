package config

import (
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	tperrors "github.com/tentapress/tentapress/internal/errors"
)

// Load reads configuration, merging (later overrides earlier):
//  1. Built-in defaults
//  2. Config file (tentapress.yaml in the working directory, or path if set)
//  3. Environment variables (TP_*)
//
// A missing config file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("no config file, using defaults", "path", path)
	case err != nil:
		return nil, tperrors.ErrConfigInvalid(path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, tperrors.ErrConfigInvalid(path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv applies TP_* environment variable overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TP_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TP_TEMP_DIR"); v != "" {
		cfg.TempDir = v
	}
	if v := os.Getenv("TP_DB_DIALECT"); v != "" {
		cfg.Database.Dialect = v
	}
	if v := os.Getenv("TP_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("TP_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("TP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			slog.Warn("ignoring invalid TP_PORT", "value", v)
		}
	}
	if v := os.Getenv("TP_THEMES_DIR"); v != "" {
		cfg.Themes.Dir = v
	}
}
