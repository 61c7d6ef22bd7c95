// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Defaults applied to fields no source has set.
const (
	DefaultStorageDriver    = "sqlite"
	DefaultViewerURL        = "https://tabkeeper.app"
	DefaultCompression      = "xz"
	DefaultShortenerTimeout = 5 * time.Second
	DefaultDaemonAddress    = "127.0.0.1:7465"
	DefaultDaemonTimeout    = 3 * time.Second
	DefaultRefreshInterval  = 30 * time.Second
	DefaultLogLevel         = "info"
)

// DataDir returns the directory holding tabkeeper state.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tabkeeper")
}

func (cfg *Config) applyDefaults() {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
	if cfg.Storage.DSN == "" {
		name := "tabkeeper.db"
		if cfg.Storage.Driver == "file" {
			name = "tabkeeper.json"
		}
		cfg.Storage.DSN = filepath.Join(DataDir(), name)
	}
	if cfg.Share.ViewerURL == "" {
		cfg.Share.ViewerURL = DefaultViewerURL
	}
	if cfg.Share.Compression == "" {
		cfg.Share.Compression = DefaultCompression
	}
	if cfg.Shortener.Timeout == 0 {
		cfg.Shortener.Timeout = DefaultShortenerTimeout
	}
	if cfg.Daemon.Address == "" {
		cfg.Daemon.Address = DefaultDaemonAddress
	}
	if cfg.Daemon.RequestTimeout == 0 {
		cfg.Daemon.RequestTimeout = DefaultDaemonTimeout
	}
	if cfg.Daemon.RefreshInterval == 0 {
		cfg.Daemon.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Clipboard.FallbackFile == "" {
		cfg.Clipboard.FallbackFile = filepath.Join(DataDir(), "clipboard.txt")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// validate checks the merged, defaulted config.
func (cfg *Config) validate() error {
	if !slices.Contains([]string{"sqlite", "file"}, cfg.Storage.Driver) {
		return fmt.Errorf("%w: driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if !isHTTPURL(cfg.Share.ViewerURL) {
		return fmt.Errorf("%w: viewer url %q", ErrInvalidShareConfigs, cfg.Share.ViewerURL)
	}
	if !slices.Contains([]string{"xz", "none"}, cfg.Share.Compression) {
		return fmt.Errorf("%w: compression %q", ErrInvalidShareConfigs, cfg.Share.Compression)
	}

	if cfg.Shortener.URL != "" && !isHTTPURL(cfg.Shortener.URL) {
		return fmt.Errorf("%w: url %q", ErrInvalidShortenerConfigs, cfg.Shortener.URL)
	}
	if cfg.Shortener.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidShortenerConfigs)
	}

	if _, _, err := net.SplitHostPort(cfg.Daemon.Address); err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidDaemonConfigs, cfg.Daemon.Address, err)
	}
	if cfg.Daemon.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidDaemonConfigs)
	}

	if !slices.Contains([]string{"", "json", "html"}, cfg.Source.Kind) {
		return fmt.Errorf("%w: kind %q", ErrInvalidSourceConfigs, cfg.Source.Kind)
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
