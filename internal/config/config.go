// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TABKEEPER_"

// Config is the top-level configuration of tabkeeper.
type Config struct {
	// Storage selects the key-value backend for folders and settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Share controls how share links are produced.
	Share Share `envPrefix:"SHARE_"`

	// Shortener configures the link-shortening service.
	Shortener Shortener `envPrefix:"SHORTENER_"`

	// Daemon configures the background HTTP daemon.
	Daemon Daemon `envPrefix:"DAEMON_"`

	// Source tells where the current browser tabs are read from.
	Source Source `envPrefix:"SOURCE_"`

	// Clipboard configures the clipboard fallback chain.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: TABKEEPER_CONFIG
	FilePath string `env:"CONFIG"`
}

// Storage holds the key-value backend settings.
type Storage struct {
	// Driver is "sqlite" or "file".
	// Env: TABKEEPER_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the SQLite database path, or the JSON state file for the file
	// driver.
	// Env: TABKEEPER_STORAGE_DSN
	DSN string `env:"DSN"`
}

// Share holds share link settings.
type Share struct {
	// ViewerURL is the base URL of the page that decrypts shared folders.
	// Links look like <ViewerURL>/share.html#data=...
	// Env: TABKEEPER_SHARE_VIEWER_URL
	ViewerURL string `env:"VIEWER_URL"`

	// Compression is "xz" or "none".
	// Env: TABKEEPER_SHARE_COMPRESSION
	Compression string `env:"COMPRESSION"`
}

// Shortener holds the link-shortening service settings.
type Shortener struct {
	// URL is the service base URL. Empty disables shortening.
	// Env: TABKEEPER_SHORTENER_URL
	URL string `env:"URL"`

	// Timeout bounds a single shortening request.
	// Env: TABKEEPER_SHORTENER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Disabled turns shortening off even when URL is set.
	// Env: TABKEEPER_SHORTENER_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Enabled reports whether share links should be shortened.
func (s Shortener) Enabled() bool {
	return s.URL != "" && !s.Disabled
}

// Daemon holds the background daemon settings.
type Daemon struct {
	// Address is the listen (and dial) address in host:port form.
	// Env: TABKEEPER_DAEMON_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds client calls to the daemon.
	// Env: TABKEEPER_DAEMON_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshInterval is how often the daemon re-reads the tab source.
	// Env: TABKEEPER_DAEMON_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Source holds the tab source settings.
type Source struct {
	// File is a browser session export (JSON) or a bookmarks file (HTML).
	// Env: TABKEEPER_SOURCE_FILE
	File string `env:"FILE"`

	// Kind is "json" or "html"; empty picks by file extension.
	// Env: TABKEEPER_SOURCE_KIND
	Kind string `env:"KIND"`
}

// Clipboard holds clipboard fallback settings.
type Clipboard struct {
	// FallbackFile receives the text when no clipboard is reachable.
	// Env: TABKEEPER_CLIPBOARD_FALLBACK_FILE
	FallbackFile string `env:"FALLBACK_FILE"`

	// DisableOSC52 skips the terminal escape sequence strategy.
	// Env: TABKEEPER_CLIPBOARD_DISABLE_OSC52
	DisableOSC52 bool `env:"DISABLE_OSC52"`
}

// Log holds logging settings.
type Log struct {
	// Env: TABKEEPER_LOG_FILE
	File string `env:"FILE"`
	// Env: TABKEEPER_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Load builds the configuration from every source. flags holds the values
// bound with [BindFlags]; nil skips the flag source.
func Load(flags *Config) (*Config, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
