// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading. Values come
// from defaults, an optional YAML file, ANIMDOCS_* environment variables,
// and command-line flags bound by the CLI, in increasing order of priority.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ANIMDOCS_PORT.
const EnvPrefix = "ANIMDOCS"

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host     string
	Port     int
	Env      string // "development", "production", "testing"
	LogLevel string // "debug", "info", "warn", "error"

	// Site presentation
	SiteName        string
	SearchPageSize  int
	GalleryPageSize int
	CopyResetDelay  time.Duration // how long the copy button shows its check mark

	// Valkey (Redis-compatible) page cache. Empty address disables it.
	ValkeyAddr     string
	ValkeyPassword string
	CacheTTL       time.Duration

	// Requests per minute allowed on /search from a single client.
	SearchRateLimit int
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("site_name", "AnimDocs")
	v.SetDefault("search_page_size", 3)
	v.SetDefault("gallery_page_size", 2)
	v.SetDefault("copy_reset_ms", 2000)
	v.SetDefault("valkey_addr", "")
	v.SetDefault("valkey_password", "")
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("search_rate_limit", 60)
}

// NewViper returns a viper instance with defaults and environment binding
// set up. If configFile is non-empty it is read as YAML; a missing default
// file is not an error.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		slog.Info("config file loaded", "path", v.ConfigFileUsed())
	}

	return v, nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		Env:             v.GetString("env"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		SiteName:        v.GetString("site_name"),
		SearchPageSize:  v.GetInt("search_page_size"),
		GalleryPageSize: v.GetInt("gallery_page_size"),
		CopyResetDelay:  time.Duration(v.GetInt("copy_reset_ms")) * time.Millisecond,
		ValkeyAddr:      v.GetString("valkey_addr"),
		ValkeyPassword:  v.GetString("valkey_password"),
		CacheTTL:        v.GetDuration("cache_ttl"),
		SearchRateLimit: v.GetInt("search_rate_limit"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Env {
	case "development", "production", "testing":
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.SearchPageSize < 1 {
		return fmt.Errorf("search_page_size must be positive, got %d", c.SearchPageSize)
	}
	if c.GalleryPageSize < 1 {
		return fmt.Errorf("gallery_page_size must be positive, got %d", c.GalleryPageSize)
	}
	if c.CopyResetDelay < 0 {
		return fmt.Errorf("copy_reset_ms must not be negative")
	}
	if c.SearchRateLimit < 1 {
		return fmt.Errorf("search_rate_limit must be positive, got %d", c.SearchRateLimit)
	}
	return nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether the Valkey page cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyAddr != ""
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Watch re-reads the config file on change and calls onChange with the new
// Config. Invalid edits are logged and ignored. It is a no-op when v was not
// loaded from a file.
func Watch(v *viper.Viper, onChange func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load(v)
		if err != nil {
			slog.Warn("config reload rejected", "file", e.Name, "error", err)
			return
		}
		slog.Info("config reloaded", "file", e.Name)
		onChange(cfg)
	})
	v.WatchConfig()
}
