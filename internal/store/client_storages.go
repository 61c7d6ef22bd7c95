package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

// Storage drivers accepted in config.Storage.Driver.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// ClientStorages groups the stores used by the service layer. All of them
// share one [KeyValueStore].
type ClientStorages struct {
	KeyValue KeyValueStore
	Folders  FolderStore
	Settings SettingsStore
}

// NewClientStorages opens the backend named by cfg.Driver and wires the
// folder and settings stores over it. For SQLite the schema is migrated
// before use.
func NewClientStorages(ctx context.Context, cfg config.Storage, ids IDGenerator, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var kv KeyValueStore
	switch cfg.Driver {
	case DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLiteKeyValueStore(db)
	case DriverFile:
		kv = NewFileKeyValueStore(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}

	return NewClientStoragesFromKeyValue(kv, ids), nil
}

// NewClientStoragesFromKeyValue wires the stores over an existing backend.
func NewClientStoragesFromKeyValue(kv KeyValueStore, ids IDGenerator) *ClientStorages {
	return &ClientStorages{
		KeyValue: kv,
		Folders:  NewFolderStore(kv, ids),
		Settings: NewSettingsStore(kv, ids),
	}
}

// Close releases the underlying backend.
func (s *ClientStorages) Close() error {
	return s.KeyValue.Close()
}
