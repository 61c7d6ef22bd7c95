// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
)

const defaultRefreshInterval = 30 * time.Second

// TabRefresher keeps the daemon session in step with the tab source by
// re-reading it on a ticker. The provider caches what it reads.
type TabRefresher struct {
	tabs     service.TabProvider
	interval time.Duration
	logger   *logger.Logger
}

// NewTabRefresher returns a refresher reading tabs every interval. A zero
// or negative interval falls back to 30 seconds.
func NewTabRefresher(tabs service.TabProvider, interval time.Duration, logger *logger.Logger) *TabRefresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &TabRefresher{tabs: tabs, interval: interval, logger: logger}
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (r *TabRefresher) Run(ctx context.Context) {
	r.refresh(ctx)

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.refresh(ctx)
		}
	}
}

func (r *TabRefresher) refresh(ctx context.Context) {
	tabs, err := r.tabs.Current(ctx)
	switch {
	case errors.Is(err, service.ErrNoTabs), errors.Is(err, context.Canceled):
	case err != nil:
		r.logger.Warn().Err(err).Str("func", "*TabRefresher.refresh").Msg("failed to refresh tabs")
	default:
		r.logger.Debug().Str("func", "*TabRefresher.refresh").Int("tabs", len(tabs)).Msg("tabs refreshed")
	}
}
