// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host provides the browser-side capabilities tabkeeper works with:
// listing the open tabs and opening URLs.
package host

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/models"
)

//go:generate mockgen -source=host.go -destination=../mock/host_mock.go -package=mock

// Source kinds.
const (
	KindJSON = "json"
	KindHTML = "html"
)

var (
	// ErrNoTabSource is returned when no tab source file is configured.
	ErrNoTabSource = errors.New("no tab source configured")
	// ErrReadingTabs wraps failures to read or parse the tab source.
	ErrReadingTabs = errors.New("failed to read tabs")
)

// TabSource enumerates the tabs of the current browser window.
type TabSource interface {
	// Tabs returns every open tab in window order.
	Tabs(ctx context.Context) ([]models.Tab, error)
	// Highlighted returns the tabs the user has selected. Sources without a
	// notion of selection return an empty slice.
	Highlighted(ctx context.Context) ([]models.Tab, error)
}

// Opener opens URLs in the user's browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// NewTabSource returns the source described by cfg. An empty cfg.Kind is
// resolved from the file extension: .html and .htm are bookmark exports,
// everything else is a JSON session.
func NewTabSource(cfg config.Source) (TabSource, error) {
	if cfg.File == "" {
		return nil, ErrNoTabSource
	}

	kind := cfg.Kind
	if kind == "" {
		switch strings.ToLower(filepath.Ext(cfg.File)) {
		case ".html", ".htm":
			kind = KindHTML
		default:
			kind = KindJSON
		}
	}

	switch kind {
	case KindJSON:
		return NewJSONSource(cfg.File), nil
	case KindHTML:
		return NewHTMLSource(cfg.File), nil
	default:
		return nil, fmt.Errorf("unknown tab source kind %q", kind)
	}
}
