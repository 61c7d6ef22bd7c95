// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const (
	foldersKey = "folders"

	// createdAtLayout matches the ISO-8601 form browsers emit: UTC with
	// millisecond precision.
	createdAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

type folderStore struct {
	kv  KeyValueStore
	ids IDGenerator
	now func() time.Time
}

// NewFolderStore returns a [FolderStore] keeping the folder list under the
// "folders" key of kv.
func NewFolderStore(kv KeyValueStore, ids IDGenerator) FolderStore {
	return &folderStore{
		kv:  kv,
		ids: ids,
		now: time.Now,
	}
}

func (s *folderStore) LoadAll(ctx context.Context) ([]models.Folder, error) {
	return s.load(ctx)
}

func (s *folderStore) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	folders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	folder, ok := lo.Find(folders, func(f models.Folder) bool { return f.ID == id })
	if !ok {
		return nil, nil
	}
	return &folder, nil
}

func (s *folderStore) Create(ctx context.Context, name string, tabs []models.Tab) (models.Folder, error) {
	folders, err := s.load(ctx)
	if err != nil {
		return models.Folder{}, err
	}

	folder := models.Folder{
		ID:        s.ids.Generate(),
		Name:      name,
		CreatedAt: s.now().UTC().Format(createdAtLayout),
		Tabs:      models.CompactTabs(tabs),
	}

	if err = s.persist(ctx, append(folders, folder)); err != nil {
		return models.Folder{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "folderStore.Create").
		Str("folder_id", folder.ID).
		Int("tabs", len(folder.Tabs)).
		Msg("folder created")

	return folder, nil
}

func (s *folderStore) Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error) {
	return s.mutate(ctx, id, func(f models.Folder) (models.Folder, error) {
		return patch.Apply(f), nil
	})
}

func (s *folderStore) AddTabs(ctx context.Context, id string, tabs []models.Tab) (*models.Folder, error) {
	return s.mutate(ctx, id, func(f models.Folder) (models.Folder, error) {
		f.Tabs = append(slices.Clone(f.Tabs), models.CompactTabs(tabs)...)
		return f, nil
	})
}

func (s *folderStore) RemoveTab(ctx context.Context, id string, index int) (*models.Folder, error) {
	return s.mutate(ctx, id, func(f models.Folder) (models.Folder, error) {
		if index < 0 || index >= len(f.Tabs) {
			return f, fmt.Errorf("%w: %d (folder has %d tabs)", ErrTabIndexOutOfRange, index, len(f.Tabs))
		}
		f.Tabs = slices.Delete(slices.Clone(f.Tabs), index, index+1)
		return f, nil
	})
}

func (s *folderStore) Delete(ctx context.Context, id string) (bool, error) {
	folders, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	remaining := lo.Reject(folders, func(f models.Folder, _ int) bool { return f.ID == id })
	if len(remaining) == len(folders) {
		return false, nil
	}

	if err = s.persist(ctx, remaining); err != nil {
		return false, err
	}
	return true, nil
}

// mutate reloads the list, applies change to the folder with id and persists
// the list. A missing folder yields (nil, nil) without writing.
func (s *folderStore) mutate(ctx context.Context, id string, change func(models.Folder) (models.Folder, error)) (*models.Folder, error) {
	folders, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	_, idx, ok := lo.FindIndexOf(folders, func(f models.Folder) bool { return f.ID == id })
	if !ok {
		return nil, nil
	}

	updated, err := change(folders[idx])
	if err != nil {
		return nil, err
	}
	folders[idx] = updated

	if err = s.persist(ctx, folders); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *folderStore) load(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	if _, err := s.kv.Get(ctx, foldersKey, &folders); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderStore.load").
			Msg("failed to load folders")
		return nil, fmt.Errorf("load folders: %w", err)
	}

	if folders == nil {
		return []models.Folder{}, nil
	}
	for i := range folders {
		if folders[i].Tabs == nil {
			folders[i].Tabs = []models.CompactTab{}
		}
	}
	return folders, nil
}

func (s *folderStore) persist(ctx context.Context, folders []models.Folder) error {
	if err := s.kv.Set(ctx, foldersKey, folders); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderStore.persist").
			Int("folders", len(folders)).
			Msg("failed to save folders")
		return fmt.Errorf("save folders: %w", err)
	}
	return nil
}
