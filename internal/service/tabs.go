package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/host"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type tabProvider struct {
	source     host.TabSource
	session    *session.Session
	background adapter.BackgroundClient
}

// NewTabProvider combines the places tabs can come from. Any argument may
// be nil.
//
// Current reads source when there is one and caches the result in sess;
// without a source it falls back to the tabs already in sess.
//
// Selected prefers the selection held by sess, then asks the background
// daemon, then the source's highlighted tabs.
func NewTabProvider(source host.TabSource, sess *session.Session, background adapter.BackgroundClient) TabProvider {
	return &tabProvider{source: source, session: sess, background: background}
}

func (p *tabProvider) Current(ctx context.Context) ([]models.Tab, error) {
	var tabs []models.Tab
	switch {
	case p.source != nil:
		read, err := p.source.Tabs(ctx)
		if err != nil {
			return nil, fmt.Errorf("read current tabs: %w", err)
		}
		tabs = read
		if p.session != nil {
			p.session.SetTabs(tabs)
		}
	case p.session != nil:
		tabs = p.session.Tabs()
	}

	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	return tabs, nil
}

func (p *tabProvider) Selected(ctx context.Context) ([]models.Tab, error) {
	if p.session != nil {
		if selected := p.session.Selected(); len(selected) > 0 {
			return selected, nil
		}
	}

	if p.background != nil {
		selected, err := p.background.Selection(ctx)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).
				Str("func", "tabProvider.Selected").
				Msg("background daemon did not answer, skipping its selection")
		} else if len(selected) > 0 {
			return selected, nil
		}
	}

	if p.source != nil {
		selected, err := p.source.Highlighted(ctx)
		if err != nil {
			return nil, fmt.Errorf("read highlighted tabs: %w", err)
		}
		if len(selected) > 0 {
			return selected, nil
		}
	}

	return nil, ErrNoTabsSelected
}
