// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKeyValueStore keeps the whole mapping in one JSON document. The file is
// re-read on every call so writes from other processes are visible.
type fileKeyValueStore struct {
	path string
	mu   sync.Mutex
}

// NewFileKeyValueStore returns a [KeyValueStore] persisted at path. The file
// is created on first write.
func NewFileKeyValueStore(path string) KeyValueStore {
	return &fileKeyValueStore{path: path}
}

func (s *fileKeyValueStore) Get(ctx context.Context, key string, target any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	state, err := s.read()
	if err != nil {
		return false, err
	}

	raw, ok := state[key]
	if !ok {
		return false, nil
	}
	if err = json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("%w: decode key %q: %w", ErrReadingStorage, key, err)
	}
	return true, nil
}

func (s *fileKeyValueStore) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode key %q: %w", ErrWritingStorage, key, err)
	}

	state, err := s.read()
	if err != nil {
		return err
	}
	state[key] = raw
	return s.write(state)
}

func (s *fileKeyValueStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	state, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := state[key]; !ok {
		return nil
	}
	delete(state, key)
	return s.write(state)
}

func (s *fileKeyValueStore) Close() error {
	return nil
}

func (s *fileKeyValueStore) read() (map[string]json.RawMessage, error) {
	state := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrReadingStorage, s.path, err)
	}
	if len(data) == 0 {
		return state, nil
	}

	if err = json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrReadingStorage, s.path, err)
	}
	return state, nil
}

// write replaces the file atomically so a concurrent reader never sees a
// half-written document.
func (s *fileKeyValueStore) write(state map[string]json.RawMessage) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %w", ErrWritingStorage, err)
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode state: %w", ErrWritingStorage, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWritingStorage, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %w", ErrWritingStorage, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %w", ErrWritingStorage, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: chmod temp file: %w", ErrWritingStorage, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", ErrWritingStorage, s.path, err)
	}
	return nil
}
