// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

const (
	kvTable       = "kv_store"
	kvColName     = "name"
	kvColValue    = "value"
	kvColUpdated  = "updated_at"
	kvUpsertSuffix = "ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// sqliteKeyValueStore keeps every key as one row of the kv_store table.
type sqliteKeyValueStore struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] over db. The schema must
// already be migrated.
func NewSQLiteKeyValueStore(db *DB) KeyValueStore {
	return &sqliteKeyValueStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string, target any) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(kvColValue).
		From(kvTable).
		Where(sq.Eq{kvColName: key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read key")
		return false, fmt.Errorf("%w: key %q: %w", ErrReadingStorage, key, err)
	}

	if err = json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("%w: decode key %q: %w", ErrReadingStorage, key, err)
	}
	return true, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode key %q: %w", ErrWritingStorage, key, err)
	}

	query, args, err := s.builder.
		Insert(kvTable).
		Columns(kvColName, kvColValue, kvColUpdated).
		Values(key, string(raw), s.now().UTC()).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("key", key).
			Msg("failed to upsert key")
		return fmt.Errorf("%w: key %q: %w", ErrWritingStorage, key, err)
	}
	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{kvColName: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete key %q: %w", ErrWritingStorage, key, err)
	}
	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.db.Close()
}
