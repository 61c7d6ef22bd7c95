// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyValueStore_MissingFile(t *testing.T) {
	kv := NewFileKeyValueStore(filepath.Join(t.TempDir(), "nested", "state.json"))

	var got []string
	found, err := kv.Get(context.Background(), "folders", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestFileKeyValueStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	kv := NewFileKeyValueStore(path)

	require.NoError(t, kv.Set(ctx, "useMarkdown", false))
	require.NoError(t, kv.Set(ctx, "markdownTemplate", "* {{url}}"))

	var md bool = true
	found, err := kv.Get(ctx, "useMarkdown", &md)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, md)

	// a second store over the same file sees the writes
	other := NewFileKeyValueStore(path)
	var tpl string
	found, err = other.Get(ctx, "markdownTemplate", &tpl)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "* {{url}}", tpl)

	require.NoError(t, kv.Delete(ctx, "markdownTemplate"))
	require.NoError(t, kv.Delete(ctx, "markdownTemplate"))

	found, err = other.Get(ctx, "markdownTemplate", &tpl)
	require.NoError(t, err)
	assert.False(t, found)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileKeyValueStore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	kv := NewFileKeyValueStore(path)

	var v bool
	_, err := kv.Get(context.Background(), "useMarkdown", &v)
	assert.ErrorIs(t, err, ErrReadingStorage)

	err = kv.Set(context.Background(), "useMarkdown", true)
	assert.ErrorIs(t, err, ErrReadingStorage)
}

func TestFileKeyValueStore_WrongValueType(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	require.NoError(t, kv.Set(ctx, "folders", "not a list"))

	var folders []int
	_, err := kv.Get(ctx, "folders", &folders)
	assert.ErrorIs(t, err, ErrReadingStorage)
}

func TestFileKeyValueStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kv := newTestKV(t)
	assert.ErrorIs(t, kv.Set(ctx, "k", 1), context.Canceled)
}
