// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a flat mapping of keys to JSON values. It is the only
// shared mutable resource: several processes may use the same backend
// concurrently, so implementations never serve values from a cache.
type KeyValueStore interface {
	// Get decodes the value stored under key into target. found is false
	// (and target untouched) when the key is absent.
	Get(ctx context.Context, key string, target any) (found bool, err error)

	// Set encodes value as JSON and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error

	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// FolderStore persists the folder list under a single key.
//
// Every method reloads the list from storage before reading or mutating it,
// and mutating methods persist the whole list right after the change. There
// is no locking between processes: two simultaneous mutations from different
// processes resolve as last-write-wins.
type FolderStore interface {
	// LoadAll returns every folder. A missing key yields an empty, non-nil
	// slice.
	LoadAll(ctx context.Context) ([]models.Folder, error)

	// GetByID returns the folder with id, or nil (and no error) when there is
	// none.
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// Create stores a new folder holding the compact form of tabs.
	Create(ctx context.Context, name string, tabs []models.Tab) (models.Folder, error)

	// Update shallow-merges patch into the folder with id. Returns nil when
	// the folder does not exist.
	Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error)

	// AddTabs appends tabs to the folder with id. Returns nil when the folder
	// does not exist.
	AddTabs(ctx context.Context, id string, tabs []models.Tab) (*models.Folder, error)

	// RemoveTab drops the tab at index from the folder with id. Returns nil
	// when the folder does not exist and [ErrTabIndexOutOfRange] for a bad
	// index.
	RemoveTab(ctx context.Context, id string, index int) (*models.Folder, error)

	// Delete removes the folder with id and reports whether one was removed.
	// Storage is not written when nothing matched.
	Delete(ctx context.Context, id string) (bool, error)
}

// SettingsStore persists user preferences and custom formats. Each
// preference lives under its own key.
type SettingsStore interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error

	// Formats returns the built-in formats of kind followed by the custom
	// ones. Only markdown has custom formats.
	Formats(ctx context.Context, kind models.OutputKind) ([]models.Format, error)

	// AddCustomFormat stores a user format. Plain text formats are rejected
	// with [ErrCustomFormatsUnsupported].
	AddCustomFormat(ctx context.Context, kind models.OutputKind, name, pattern string) (models.Format, error)

	// RemoveCustomFormat deletes a custom markdown format by id and reports
	// whether one was removed.
	RemoveCustomFormat(ctx context.Context, id string) (bool, error)
}

// IDGenerator produces folder and format ids.
type IDGenerator interface {
	Generate() string
}
