// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

// seqIDs hands out predictable ids.
type seqIDs struct {
	n int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestKV(t *testing.T) KeyValueStore {
	t.Helper()
	return NewFileKeyValueStore(filepath.Join(t.TempDir(), "state.json"))
}

func newTestFolderStore(t *testing.T, kv KeyValueStore) *folderStore {
	t.Helper()
	s := NewFolderStore(kv, &seqIDs{}).(*folderStore)
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return s
}
