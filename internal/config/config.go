// Package config loads tentapress configuration.
package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the default config file name.
const ConfigFileName = "tentapress.yaml"

// Config is the tentapress configuration.
type Config struct {
	// DataDir holds themes, uploads and the plugin cache.
	DataDir string `yaml:"data_dir"`

	// TempDir is the staging area for export archives.
	TempDir string `yaml:"temp_dir"`

	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Themes   ThemesConfig   `yaml:"themes"`
}

// DatabaseConfig selects the primary store.
type DatabaseConfig struct {
	Dialect string `yaml:"dialect"` // sqlite or postgres
	Path    string `yaml:"path"`    // sqlite file path
	DSN     string `yaml:"dsn"`     // postgres connection string
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ThemesConfig configures the presentation layer.
type ThemesConfig struct {
	Dir     string `yaml:"dir"`     // themes root, defaults under data dir
	Default string `yaml:"default"` // fallback when no active_theme option is set
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: "data",
		TempDir: filepath.Join(os.TempDir(), "tentapress"),
		Database: DatabaseConfig{
			Dialect: "sqlite",
			Path:    filepath.Join("data", "tentapress.db"),
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

// ThemesDir returns the themes root, falling back to <data dir>/themes.
func (c *Config) ThemesDir() string {
	if c.Themes.Dir != "" {
		return c.Themes.Dir
	}
	return filepath.Join(c.DataDir, "themes")
}

// PluginCachePath returns the well-known plugin cache location.
func (c *Config) PluginCachePath() string {
	return filepath.Join(c.DataDir, "cache", "plugins.json")
}

// DSN returns the connection string for the configured dialect.
func (c *Config) DSN() string {
	if c.Database.Dialect == "postgres" {
		return c.Database.DSN
	}
	return c.Database.Path
}
