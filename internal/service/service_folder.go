package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/MKhiriev/go-tab-keeper/internal/host"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type folderService struct {
	folders  store.FolderStore
	settings store.SettingsStore
	tabs     TabProvider
	copy     CopyService
	opener   host.Opener
	session  *session.Session
}

// NewFolderService returns a FolderService. sess may be nil; when set, it
// receives the folder list after every List.
func NewFolderService(
	folders store.FolderStore,
	settings store.SettingsStore,
	tabs TabProvider,
	copySvc CopyService,
	opener host.Opener,
	sess *session.Session,
) FolderService {
	return &folderService{
		folders:  folders,
		settings: settings,
		tabs:     tabs,
		copy:     copySvc,
		opener:   opener,
		session:  sess,
	}
}

func (s *folderService) List(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.folders.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.session != nil {
		s.session.SetFolders(folders)
	}
	return folders, nil
}

func (s *folderService) Get(ctx context.Context, id string) (models.Folder, error) {
	folder, err := s.folders.GetByID(ctx, id)
	return found(folder, err, id)
}

func (s *folderService) Create(ctx context.Context, name string, tabs []models.Tab) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, ErrEmptyFolderName
	}

	folder, err := s.folders.Create(ctx, name, tabs)
	if err != nil {
		return models.Folder{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "folderService.Create").
		Str("folder_id", folder.ID).
		Int("tabs", len(folder.Tabs)).
		Msg("folder created")
	return folder, nil
}

func (s *folderService) Rename(ctx context.Context, id, name string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, ErrEmptyFolderName
	}

	folder, err := s.folders.Update(ctx, id, models.RenamePatch(name))
	return found(folder, err, id)
}

func (s *folderService) RemoveTab(ctx context.Context, id string, index int) (models.Folder, error) {
	folder, err := s.folders.RemoveTab(ctx, id, index)
	return found(folder, err, id)
}

func (s *folderService) Delete(ctx context.Context, id string) error {
	deleted, err := s.folders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	return nil
}

func (s *folderService) SaveCurrentTabs(ctx context.Context, name string, selectedOnly bool) (models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return models.Folder{}, ErrEmptyFolderName
	}

	tabs, err := s.currentTabs(ctx, selectedOnly)
	if err != nil {
		return models.Folder{}, err
	}
	return s.Create(ctx, name, tabs)
}

func (s *folderService) AddCurrentTabs(ctx context.Context, id string, selectedOnly bool) (models.Folder, error) {
	tabs, err := s.currentTabs(ctx, selectedOnly)
	if err != nil {
		return models.Folder{}, err
	}

	folder, err := s.folders.AddTabs(ctx, id, tabs)
	return found(folder, err, id)
}

func (s *folderService) CopyFolder(ctx context.Context, id string) (CopyResult, error) {
	folder, err := s.Get(ctx, id)
	if err != nil {
		return CopyResult{}, err
	}
	if len(folder.Tabs) == 0 {
		return CopyResult{}, ErrNoTabs
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return CopyResult{}, fmt.Errorf("load settings: %w", err)
	}
	return s.copy.CopyTabs(ctx, folder.HostTabs(), settings)
}

func (s *folderService) OpenFolder(ctx context.Context, id string) (int, error) {
	folder, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(folder.Tabs) == 0 {
		return 0, ErrNothingToOpen
	}

	var (
		opened int
		errs   []error
	)
	for _, tab := range folder.Tabs {
		if err = ctx.Err(); err != nil {
			return opened, err
		}
		if err = s.opener.Open(ctx, tab.URL); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tab.URL, err))
			continue
		}
		opened++
	}

	if len(errs) > 0 {
		return opened, errors.Join(append([]error{ErrOpeningTabs}, errs...)...)
	}
	return opened, nil
}

// folderNames implements fuzzy.Source over folder names.
type folderNames []models.Folder

func (f folderNames) String(i int) string { return f[i].Name }
func (f folderNames) Len() int            { return len(f) }

func (s *folderService) Find(ctx context.Context, query string) ([]models.Folder, error) {
	folders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return folders, nil
	}

	matches := fuzzy.FindFrom(query, folderNames(folders))
	out := make([]models.Folder, 0, len(matches))
	for _, m := range matches {
		out = append(out, folders[m.Index])
	}
	return out, nil
}

func (s *folderService) currentTabs(ctx context.Context, selectedOnly bool) ([]models.Tab, error) {
	if selectedOnly {
		return s.tabs.Selected(ctx)
	}
	return s.tabs.Current(ctx)
}

func found(folder *models.Folder, err error, id string) (models.Folder, error) {
	if err != nil {
		return models.Folder{}, err
	}
	if folder == nil {
		return models.Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	return *folder, nil
}
