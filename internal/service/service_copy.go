package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/formatter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type copyService struct {
	tabs     TabProvider
	settings store.SettingsStore
	copier   clipboard.Copier
}

func NewCopyService(tabs TabProvider, settings store.SettingsStore, copier clipboard.Copier) CopyService {
	return &copyService{tabs: tabs, settings: settings, copier: copier}
}

func (s *copyService) CopyTabs(ctx context.Context, tabs []models.Tab, settings models.Settings) (CopyResult, error) {
	if len(tabs) == 0 {
		return CopyResult{}, ErrNoTabs
	}

	text := formatter.Render(tabs, formatter.OptionsFromSettings(settings))

	res, err := s.copier.Copy(ctx, text)
	if err != nil {
		return CopyResult{}, fmt.Errorf("copy %d tabs: %w", len(tabs), err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "copyService.CopyTabs").
		Int("count", len(tabs)).
		Str("strategy", res.Strategy).
		Msg("tabs copied")

	return CopyResult{Text: text, Count: len(tabs), Strategy: res.Strategy}, nil
}

func (s *copyService) CopyAll(ctx context.Context) (CopyResult, error) {
	tabs, err := s.tabs.Current(ctx)
	if err != nil {
		return CopyResult{}, err
	}
	return s.copyWithSavedSettings(ctx, tabs)
}

func (s *copyService) CopySelected(ctx context.Context) (CopyResult, error) {
	tabs, err := s.tabs.Selected(ctx)
	if err != nil {
		return CopyResult{}, err
	}
	return s.copyWithSavedSettings(ctx, tabs)
}

func (s *copyService) CopyText(ctx context.Context, text string) (clipboard.Result, error) {
	return s.copier.Copy(ctx, text)
}

func (s *copyService) copyWithSavedSettings(ctx context.Context, tabs []models.Tab) (CopyResult, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return CopyResult{}, fmt.Errorf("load settings: %w", err)
	}
	return s.CopyTabs(ctx, tabs, settings)
}
