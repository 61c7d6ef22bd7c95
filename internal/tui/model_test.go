package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/crypto"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/mock"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/share"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const testViewerURL = "https://viewer.example"

var openTabs = []models.Tab{
	{ID: 1, Title: "Go", URL: "https://go.dev", Index: 0},
	{ID: 2, Title: "Packages", URL: "https://pkg.go.dev", Index: 1},
}

type testDeps struct {
	source   *mock.MockTabSource
	copier   *mock.MockCopier
	opener   *mock.MockOpener
	storages *store.ClientStorages
	session  *session.Session
}

func newTestModel(t *testing.T) (model, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	kv := store.NewFileKeyValueStore(filepath.Join(t.TempDir(), "state.json"))

	d := testDeps{
		source:   mock.NewMockTabSource(ctrl),
		copier:   mock.NewMockCopier(ctrl),
		opener:   mock.NewMockOpener(ctrl),
		storages: store.NewClientStoragesFromKeyValue(kv, utils.NewUUIDGenerator()),
		session:  session.New(),
	}
	d.source.EXPECT().Tabs(gomock.Any()).Return(openTabs, nil).AnyTimes()

	services := service.NewClientServices(service.Dependencies{
		Storages:  d.storages,
		Source:    d.source,
		Opener:    d.opener,
		Copier:    d.copier,
		Links:     share.NewLinks(crypto.NewShareCipher(nil), testViewerURL),
		Session:   d.session,
		BuildInfo: models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"),
	})

	m := newModel(context.Background(), services, d.session, logger.Nop())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model), d
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(model)
	require.True(t, ok)
	return got, cmd
}

func press(t *testing.T, m model, k string) (model, tea.Cmd) {
	t.Helper()
	return apply(t, m, keyMsg(k))
}

// runCmd executes an action command and feeds its result back.
func runCmd(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = apply(t, m, cmd())
	return m
}

func withFolder(t *testing.T, m model, d testDeps, name string) (model, models.Folder) {
	t.Helper()
	folder, err := d.storages.Folders.Create(context.Background(), name, openTabs)
	require.NoError(t, err)
	m = runCmd(t, m, m.cmdLoadFolders())
	return m, folder
}

func onTabsScreen(t *testing.T, m model) model {
	t.Helper()
	m, cmd := press(t, m, "tab")
	require.Equal(t, screenTabs, m.screen)
	return runCmd(t, m, cmd)
}

func TestModel_LoadFolders(t *testing.T) {
	m, d := newTestModel(t)
	m, folder := withFolder(t, m, d, "Research")

	assert.Len(t, m.folders.Items(), 1)
	selected, ok := m.selectedFolder()
	require.True(t, ok)
	assert.Equal(t, folder.ID, selected.ID)
	assert.Contains(t, m.View(), "Research")
}

func TestModel_LoadTabs_NoTabsIsNotAnError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = apply(t, m, tabsLoadedMsg{err: service.ErrNoTabs})

	assert.Empty(t, m.tabs)
	assert.Empty(t, m.status)
}

func TestModel_ToggleOption(t *testing.T) {
	m, d := newTestModel(t)
	m = onTabsScreen(t, m)
	require.True(t, m.settings.IncludeTitles)

	m, cmd := press(t, m, "t")
	assert.True(t, m.busy)
	m = runCmd(t, m, cmd)

	assert.False(t, m.busy)
	assert.False(t, m.settings.IncludeTitles)
	assert.Equal(t, "Titles off", m.status)

	saved, err := d.storages.Settings.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, saved.IncludeTitles)
}

func TestModel_CopySelectedTabs(t *testing.T) {
	m, d := newTestModel(t)
	m = onTabsScreen(t, m)
	require.Len(t, m.tabs, 2)

	m, _ = press(t, m, " ")
	require.True(t, d.session.IsSelected(1))

	d.copier.EXPECT().Copy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, text string) (clipboard.Result, error) {
			assert.Contains(t, text, "https://go.dev")
			assert.NotContains(t, text, "https://pkg.go.dev")
			return clipboard.Result{Strategy: clipboard.StrategySystem}, nil
		})

	m, cmd := press(t, m, "c")
	m = runCmd(t, m, cmd)

	assert.Equal(t, "Copied 1 tab ("+clipboard.StrategySystem+")", m.status)
	assert.False(t, m.statusIsErr)
}

func TestModel_CopyFailureKeepsScreen(t *testing.T) {
	m, d := newTestModel(t)
	m = onTabsScreen(t, m)

	d.copier.EXPECT().Copy(gomock.Any(), gomock.Any()).Return(clipboard.Result{}, clipboard.ErrAllStrategiesFailed)

	m, cmd := press(t, m, "c")
	m = runCmd(t, m, cmd)

	assert.Equal(t, screenTabs, m.screen)
	assert.Equal(t, "Clipboard is unavailable", m.status)
	assert.True(t, m.statusIsErr)
	assert.False(t, m.busy)
}

func TestModel_SaveCurrentTabsAsFolder(t *testing.T) {
	m, d := newTestModel(t)
	m = onTabsScreen(t, m)

	m, _ = press(t, m, "n")
	require.Equal(t, screenInput, m.screen)
	m, _ = press(t, m, "Reading")

	m, cmd := press(t, m, "enter")
	m = runCmd(t, m, cmd)

	assert.Equal(t, screenTabs, m.screen)
	assert.Equal(t, `Saved "Reading" with 2 tabs`, m.status)

	folders, err := d.storages.Folders.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Reading", folders[0].Name)
}

func TestModel_SaveWithEmptyNameStaysInInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "n")
	m, _ = press(t, m, "   ")
	m, cmd := press(t, m, "enter")

	assert.Equal(t, screenInput, m.screen)
	assert.Equal(t, "Folder name is required", m.status)
	assert.False(t, m.busy)
	assert.NotNil(t, cmd)

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenFolders, m.screen)
}

func TestModel_RenameFolder(t *testing.T) {
	m, d := newTestModel(t)
	m, folder := withFolder(t, m, d, "Old")

	m, _ = press(t, m, "r")
	require.Equal(t, screenInput, m.screen)
	assert.Equal(t, "Old", m.input.Value())

	m.input.SetValue("New")
	m, cmd := press(t, m, "enter")
	m = runCmd(t, m, cmd)

	assert.Equal(t, screenFolders, m.screen)
	assert.Equal(t, `Renamed to "New"`, m.status)
	got, err := d.storages.Folders.GetByID(context.Background(), folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}

func TestModel_ShareFolder(t *testing.T) {
	m, d := newTestModel(t)
	m, _ = withFolder(t, m, d, "Research")

	m, _ = press(t, m, "x")
	require.Equal(t, screenShare, m.screen)
	assert.Equal(t, textinput.EchoPassword, m.password.EchoMode)

	m, _ = press(t, m, "secret123")
	assert.NotContains(t, m.View(), "secret123")

	m, cmd := press(t, m, "enter")
	assert.Empty(t, m.password.Value())
	m = runCmd(t, m, cmd)

	assert.Equal(t, screenShareResult, m.screen)
	assert.True(t, strings.HasPrefix(m.shareURL, testViewerURL), m.shareURL)
	assert.Contains(t, m.View(), m.shareURL)

	d.copier.EXPECT().Copy(gomock.Any(), m.shareURL).Return(clipboard.Result{Strategy: clipboard.StrategyFile}, nil)
	m, cmd = press(t, m, "c")
	m = runCmd(t, m, cmd)
	assert.Equal(t, "Link copied ("+clipboard.StrategyFile+")", m.status)

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenFolders, m.screen)
}

func TestModel_ShareEmptyPassword(t *testing.T) {
	m, d := newTestModel(t)
	m, _ = withFolder(t, m, d, "Research")

	m, _ = press(t, m, "x")
	m, _ = press(t, m, "enter")

	assert.Equal(t, screenShare, m.screen)
	assert.Equal(t, "Password is required", m.status)
	assert.True(t, m.statusIsErr)
}

func TestModel_ShareFailureReturnsToFolders(t *testing.T) {
	m, d := newTestModel(t)
	m, folder := withFolder(t, m, d, "Research")

	m, _ = press(t, m, "x")
	_, err := d.storages.Folders.Delete(context.Background(), folder.ID)
	require.NoError(t, err)

	m, _ = press(t, m, "pw")
	m, cmd := press(t, m, "enter")
	m = runCmd(t, m, cmd)

	assert.Equal(t, screenFolders, m.screen)
	assert.Equal(t, "Folder no longer exists", m.status)
	assert.Empty(t, m.password.Value())
}

func TestModel_DeleteFolderAsksFirst(t *testing.T) {
	m, d := newTestModel(t)
	m, _ = withFolder(t, m, d, "Research")

	m, _ = press(t, m, "d")
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete folder "Research"?`)

	m, _ = press(t, m, "n")
	assert.False(t, m.showConfirm)

	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "y")
	m, reload := apply(t, m, cmd())

	assert.Equal(t, `Deleted "Research"`, m.status)
	assert.NotNil(t, reload)

	folders, err := d.storages.Folders.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestModel_FolderView(t *testing.T) {
	m, d := newTestModel(t)
	m, folder := withFolder(t, m, d, "Research")

	m, _ = press(t, m, "enter")
	require.Equal(t, screenFolder, m.screen)
	assert.Contains(t, m.View(), "Packages")

	d.opener.EXPECT().Open(gomock.Any(), "https://go.dev").Return(nil)
	d.opener.EXPECT().Open(gomock.Any(), "https://pkg.go.dev").Return(nil)
	m, cmd := press(t, m, "o")
	m = runCmd(t, m, cmd)
	assert.Equal(t, "Opened 2 tabs", m.status)

	m, _ = press(t, m, "j")
	m, cmd = press(t, m, "d")
	m = runCmd(t, m, cmd)

	assert.Equal(t, "Tab removed", m.status)
	require.Len(t, m.folder.Tabs, 1)
	assert.Equal(t, "Go", m.folder.Tabs[0].Title)
	assert.Equal(t, 0, m.cursor)

	got, err := d.storages.Folders.GetByID(context.Background(), folder.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tabs, 1)

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenFolders, m.screen)
}

func TestModel_BusyIgnoresSecondAction(t *testing.T) {
	m, _ := newTestModel(t)
	m = onTabsScreen(t, m)

	m, first := press(t, m, "u")
	require.NotNil(t, first)
	_, second := press(t, m, "u")

	assert.Nil(t, second)
}

func TestModel_ClearStatusIgnoresStale(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.notify("one")
	m, _ = m.notify("two")

	m, _ = apply(t, m, clearStatusMsg{seq: m.statusSeq - 1})
	assert.Equal(t, "two", m.status)

	m, _ = apply(t, m, clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped sentinel", err: fmt.Errorf("copy: %w", service.ErrNoTabsSelected), want: "No tabs selected"},
		{name: "clipboard", err: fmt.Errorf("copy 2 tabs: %w", clipboard.ErrAllStrategiesFailed), want: "Clipboard is unavailable"},
		{name: "unknown", err: errors.New("disk full"), want: "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
