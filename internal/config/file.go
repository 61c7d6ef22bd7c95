// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of the config file. JSON and YAML share
// the same keys.
type fileConfig struct {
	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		DSN    string `json:"dsn" yaml:"dsn"`
	} `json:"storage" yaml:"storage"`

	Share struct {
		ViewerURL   string `json:"viewer_url" yaml:"viewer_url"`
		Compression string `json:"compression" yaml:"compression"`
	} `json:"share" yaml:"share"`

	Shortener struct {
		URL      string   `json:"url" yaml:"url"`
		Timeout  Duration `json:"timeout" yaml:"timeout"`
		Disabled bool     `json:"disabled" yaml:"disabled"`
	} `json:"shortener" yaml:"shortener"`

	Daemon struct {
		Address         string   `json:"address" yaml:"address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		RefreshInterval Duration `json:"refresh_interval" yaml:"refresh_interval"`
	} `json:"daemon" yaml:"daemon"`

	Source struct {
		File string `json:"file" yaml:"file"`
		Kind string `json:"kind" yaml:"kind"`
	} `json:"source" yaml:"source"`

	Clipboard struct {
		FallbackFile string `json:"fallback_file" yaml:"fallback_file"`
		DisableOSC52 bool   `json:"disable_osc52" yaml:"disable_osc52"`
	} `json:"clipboard" yaml:"clipboard"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a JSON or YAML config file, picking the decoder by
// extension (.yaml/.yml, everything else is JSON).
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("%w: error decoding yaml configs: %w", ErrInvalidConfigFile, err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("%w: error decoding json configs: %w", ErrInvalidConfigFile, err)
		}
	}

	return &Config{
		Storage: Storage{
			Driver: fc.Storage.Driver,
			DSN:    fc.Storage.DSN,
		},
		Share: Share{
			ViewerURL:   fc.Share.ViewerURL,
			Compression: fc.Share.Compression,
		},
		Shortener: Shortener{
			URL:      fc.Shortener.URL,
			Timeout:  time.Duration(fc.Shortener.Timeout),
			Disabled: fc.Shortener.Disabled,
		},
		Daemon: Daemon{
			Address:         fc.Daemon.Address,
			RequestTimeout:  time.Duration(fc.Daemon.RequestTimeout),
			RefreshInterval: time.Duration(fc.Daemon.RefreshInterval),
		},
		Source: Source{
			File: fc.Source.File,
			Kind: fc.Source.Kind,
		},
		Clipboard: Clipboard{
			FallbackFile: fc.Clipboard.FallbackFile,
			DisableOSC52: fc.Clipboard.DisableOSC52,
		},
		Log: Log{
			File:  fc.Log.File,
			Level: fc.Log.Level,
		},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
