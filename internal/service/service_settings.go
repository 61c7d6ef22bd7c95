package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type settingsService struct {
	store   store.SettingsStore
	session *session.Session
}

// NewSettingsService returns a SettingsService. sess may be nil; when set,
// it is kept in sync with what was last loaded or saved.
func NewSettingsService(settings store.SettingsStore, sess *session.Session) SettingsService {
	return &settingsService{store: settings, session: sess}
}

func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	s.remember(settings)
	return settings, nil
}

func (s *settingsService) Save(ctx context.Context, settings models.Settings) error {
	if err := s.store.Save(ctx, settings); err != nil {
		return err
	}
	s.remember(settings)
	return nil
}

func (s *settingsService) Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	fn(&settings)

	if err = s.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *settingsService) Formats(ctx context.Context, kind models.OutputKind) ([]models.Format, error) {
	return s.store.Formats(ctx, kind)
}

func (s *settingsService) AddFormat(ctx context.Context, kind models.OutputKind, name, pattern string) (models.Format, error) {
	return s.store.AddCustomFormat(ctx, kind, name, pattern)
}

func (s *settingsService) RemoveFormat(ctx context.Context, id string) (bool, error) {
	return s.store.RemoveCustomFormat(ctx, id)
}

func (s *settingsService) UseFormat(ctx context.Context, kind models.OutputKind, id string) (models.Settings, error) {
	formats, err := s.store.Formats(ctx, kind)
	if err != nil {
		return models.Settings{}, err
	}

	format, ok := lo.Find(formats, func(f models.Format) bool { return f.ID == id })
	if !ok {
		return models.Settings{}, fmt.Errorf("%w: %s", ErrFormatNotFound, id)
	}

	return s.Update(ctx, func(settings *models.Settings) {
		if kind == models.Markdown {
			settings.MarkdownTemplate = format.Pattern
		} else {
			settings.PlainTemplate = format.Pattern
		}
	})
}

func (s *settingsService) remember(settings models.Settings) {
	if s.session != nil {
		s.session.SetSettings(settings)
	}
}
