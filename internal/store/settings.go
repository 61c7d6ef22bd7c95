// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// Storage keys of the individual preferences.
const (
	keyIncludeTitles         = "includeTitles"
	keyIncludeURLs           = "includeUrls"
	keyUseMarkdown           = "useMarkdown"
	keySortByPosition        = "sortByPosition"
	keyGroupByDomain         = "groupByDomain"
	keyMarkdownTemplate      = "markdownTemplate"
	keyPlainTemplate         = "plainTemplate"
	keyCustomMarkdownFormats = "customMarkdownFormats"

	customFormatIDPrefix = "custom-"
)

type settingField struct {
	key    string
	target any
}

type settingsStore struct {
	kv  KeyValueStore
	ids IDGenerator
}

// NewSettingsStore returns a [SettingsStore] over kv.
func NewSettingsStore(kv KeyValueStore, ids IDGenerator) SettingsStore {
	return &settingsStore{kv: kv, ids: ids}
}

func settingFields(s *models.Settings) []settingField {
	return []settingField{
		{keyIncludeTitles, &s.IncludeTitles},
		{keyIncludeURLs, &s.IncludeURLs},
		{keyUseMarkdown, &s.UseMarkdown},
		{keySortByPosition, &s.SortByPosition},
		{keyGroupByDomain, &s.GroupByDomain},
		{keyMarkdownTemplate, &s.MarkdownTemplate},
		{keyPlainTemplate, &s.PlainTemplate},
	}
}

// Load returns the stored preferences; keys that were never written keep
// their default value.
func (s *settingsStore) Load(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	for _, field := range settingFields(&settings) {
		if _, err := s.kv.Get(ctx, field.key, field.target); err != nil {
			return models.DefaultSettings(), fmt.Errorf("load setting %s: %w", field.key, err)
		}
	}

	if strings.TrimSpace(settings.MarkdownTemplate) == "" {
		settings.MarkdownTemplate = models.DefaultMarkdownTemplate
	}
	if strings.TrimSpace(settings.PlainTemplate) == "" {
		settings.PlainTemplate = models.DefaultPlainTemplate
	}
	return settings, nil
}

func (s *settingsStore) Save(ctx context.Context, settings models.Settings) error {
	for _, field := range settingFields(&settings) {
		if err := s.kv.Set(ctx, field.key, field.target); err != nil {
			return fmt.Errorf("save setting %s: %w", field.key, err)
		}
	}
	return nil
}

func (s *settingsStore) Formats(ctx context.Context, kind models.OutputKind) ([]models.Format, error) {
	formats := models.BuiltInFormats(kind)
	if kind != models.Markdown {
		return formats, nil
	}

	custom, err := s.customFormats(ctx)
	if err != nil {
		return nil, err
	}
	return append(formats, custom...), nil
}

func (s *settingsStore) AddCustomFormat(ctx context.Context, kind models.OutputKind, name, pattern string) (models.Format, error) {
	if kind != models.Markdown {
		return models.Format{}, ErrCustomFormatsUnsupported
	}
	if strings.TrimSpace(pattern) == "" {
		return models.Format{}, ErrEmptyFormatPattern
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = pattern
	}

	custom, err := s.customFormats(ctx)
	if err != nil {
		return models.Format{}, err
	}

	format := models.Format{
		ID:      customFormatIDPrefix + s.ids.Generate(),
		Name:    name,
		Pattern: pattern,
	}
	if err = s.kv.Set(ctx, keyCustomMarkdownFormats, append(custom, format)); err != nil {
		return models.Format{}, fmt.Errorf("save custom formats: %w", err)
	}
	return format, nil
}

func (s *settingsStore) RemoveCustomFormat(ctx context.Context, id string) (bool, error) {
	custom, err := s.customFormats(ctx)
	if err != nil {
		return false, err
	}

	remaining := lo.Reject(custom, func(f models.Format, _ int) bool { return f.ID == id })
	if len(remaining) == len(custom) {
		return false, nil
	}

	if err = s.kv.Set(ctx, keyCustomMarkdownFormats, remaining); err != nil {
		return false, fmt.Errorf("save custom formats: %w", err)
	}
	return true, nil
}

func (s *settingsStore) customFormats(ctx context.Context) ([]models.Format, error) {
	var custom []models.Format
	if _, err := s.kv.Get(ctx, keyCustomMarkdownFormats, &custom); err != nil {
		return nil, fmt.Errorf("load custom formats: %w", err)
	}
	if custom == nil {
		custom = []models.Format{}
	}
	return custom, nil
}
