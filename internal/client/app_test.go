package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const sessionJSON = `[
	{"id": 1, "title": "A", "url": "https://a.com", "index": 0},
	{"id": 2, "title": "B", "url": "https://b.com", "index": 1, "highlighted": true}
]`

func newTestFlags(t *testing.T, driver string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	tabs := filepath.Join(dir, "tabs.json")
	require.NoError(t, os.WriteFile(tabs, []byte(sessionJSON), 0o600))

	dsn := filepath.Join(dir, "state.json")
	if driver == "sqlite" {
		dsn = filepath.Join(dir, "state.db")
	}

	return &config.Config{
		Storage:   config.Storage{Driver: driver, DSN: dsn},
		Source:    config.Source{File: tabs},
		Shortener: config.Shortener{Disabled: true},
		Daemon:    config.Daemon{Address: "127.0.0.1:0"},
		Clipboard: config.Clipboard{FallbackFile: filepath.Join(dir, "clip.txt")},
		Log:       config.Log{File: filepath.Join(dir, "tabkeeper.log")},
	}
}

func TestNewApp_SaveShareOpen(t *testing.T) {
	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			app, err := NewApp(ctx, Options{Flags: newTestFlags(t, driver)})
			require.NoError(t, err)
			defer app.Close()

			ctx = app.Context(ctx)
			require.True(t, app.HasTabSource())

			folder, err := app.Services.Folders.SaveCurrentTabs(ctx, "Research", false)
			require.NoError(t, err)
			assert.Len(t, folder.Tabs, 2)

			folders, err := app.Services.Folders.List(ctx)
			require.NoError(t, err)
			require.Len(t, folders, 1)
			assert.Equal(t, folder.ID, folders[0].ID)

			res, err := app.Services.Share.Share(ctx, folder.ID, "secret123", true)
			require.NoError(t, err)
			assert.False(t, res.Shortened)

			opened, err := app.Services.Share.Open(ctx, res.URL, "secret123")
			require.NoError(t, err)
			assert.Equal(t, folder, opened)
		})
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	flags := newTestFlags(t, "file")
	flags.Storage.Driver = "postgres"

	_, err := NewApp(context.Background(), Options{Flags: flags})
	assert.Error(t, err)
}

func TestApp_RunDaemon(t *testing.T) {
	app, err := NewApp(context.Background(), Options{
		Flags:     newTestFlags(t, "file"),
		BuildInfo: models.NewAppBuildInfo("1.0.0", "", ""),
		Daemon:    true,
	})
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.Background)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunDaemon(ctx) }()

	// the refresher fills the session from the tab source
	require.Eventually(t, func() bool { return len(app.Session.Tabs()) == 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("daemon did not stop")
	}
}

func TestApp_SelectedFallsBackToHighlighted(t *testing.T) {
	flags := newTestFlags(t, "file")
	// nothing listens here, so the daemon lookup fails fast
	flags.Daemon.Address = "127.0.0.1:1"
	flags.Daemon.RequestTimeout = 200 * time.Millisecond

	app, err := NewApp(context.Background(), Options{Flags: flags})
	require.NoError(t, err)
	defer app.Close()

	tabs, err := app.Services.Tabs.Selected(app.Context(context.Background()))
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "B", tabs[0].Title)

	_, err = app.Services.Folders.Get(app.Context(context.Background()), "missing")
	assert.ErrorIs(t, err, service.ErrFolderNotFound)
}
