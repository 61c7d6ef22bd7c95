package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tab-keeper/internal/app"
	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/mock"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/internal/validators"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type testDeps struct {
	folders  *mock.MockFolderStore
	settings *mock.MockSettingsStore
	copier   *mock.MockCopier
	opener   *mock.MockOpener
	source   *mock.MockTabSource
	session  *session.Session
}

func newTestRouter(t *testing.T) (http.Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := testDeps{
		folders:  mock.NewMockFolderStore(ctrl),
		settings: mock.NewMockSettingsStore(ctrl),
		copier:   mock.NewMockCopier(ctrl),
		opener:   mock.NewMockOpener(ctrl),
		source:   mock.NewMockTabSource(ctrl),
		session:  session.New(),
	}

	services := service.NewClientServices(service.Dependencies{
		Storages:  &store.ClientStorages{Folders: d.folders, Settings: d.settings},
		Source:    d.source,
		Opener:    d.opener,
		Copier:    d.copier,
		Session:   d.session,
		BuildInfo: models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"),
	})

	return NewHandler(services, d.session, logger.Nop()).Init(), d
}

func postMessage(t *testing.T, h http.Handler, msg models.Message) (*httptest.ResponseRecorder, models.MessageReply) {
	t.Helper()
	body, err := models.EncodeMessage(msg)
	require.NoError(t, err)
	return postRaw(t, h, body)
}

func postRaw(t *testing.T, h http.Handler, body []byte) (*httptest.ResponseRecorder, models.MessageReply) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var reply models.MessageReply
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reply), rr.Body.String())
	return rr, reply
}

// ── /api/messages ────────────────────────────────────────────────────────────

func TestHandleMessage_TabsSelected(t *testing.T) {
	h, d := newTestRouter(t)
	tabs := []models.Tab{{ID: 3, Title: "Go", URL: "https://go.dev", Highlighted: true}}

	rr, reply := postMessage(t, h, models.TabsSelected{Tabs: tabs})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, reply.OK)
	assert.Equal(t, 1, reply.Count)
	assert.Equal(t, tabs, d.session.Selected())
}

func TestHandleMessage_CopyToClipboard(t *testing.T) {
	h, d := newTestRouter(t)

	d.copier.EXPECT().Copy(gomock.Any(), "hello").Return(clipboard.Result{Strategy: clipboard.StrategyOSC52}, nil)

	rr, reply := postMessage(t, h, models.CopyToClipboard{Text: "hello"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, clipboard.StrategyOSC52, reply.Strategy)
}

func TestHandleMessage_CopyToClipboard_Empty(t *testing.T) {
	h, _ := newTestRouter(t)

	rr, reply := postMessage(t, h, models.CopyToClipboard{})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, reply.OK)
	assert.Equal(t, validators.ErrEmptyText.Error(), reply.Error)
}

func TestHandleMessage_CopyToClipboard_AllStrategiesFail(t *testing.T) {
	h, d := newTestRouter(t)

	d.copier.EXPECT().Copy(gomock.Any(), "x").Return(clipboard.Result{}, clipboard.ErrAllStrategiesFailed)

	rr, reply := postMessage(t, h, models.CopyToClipboard{Text: "x"})

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.False(t, reply.OK)
}

func TestHandleMessage_OpenFolder(t *testing.T) {
	h, d := newTestRouter(t)

	d.folders.EXPECT().GetByID(gomock.Any(), "f1").Return(&models.Folder{
		ID:   "f1",
		Tabs: []models.CompactTab{{URL: "https://a.com"}, {URL: "https://b.com"}},
	}, nil)
	d.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	rr, reply := postMessage(t, h, models.OpenFolder{FolderID: "f1"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, reply.Count)
}

func TestHandleMessage_OpenFolder_NotFound(t *testing.T) {
	h, d := newTestRouter(t)

	d.folders.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

	rr, reply := postMessage(t, h, models.OpenFolder{FolderID: "nope"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, reply.Error, service.ErrFolderNotFound.Error())
}

func TestHandleMessage_CopyAllTabs(t *testing.T) {
	h, d := newTestRouter(t)
	tabs := []models.Tab{{Title: "A", URL: "https://a.com"}}

	d.source.EXPECT().Tabs(gomock.Any()).Return(tabs, nil)
	d.settings.EXPECT().Load(gomock.Any()).Return(models.DefaultSettings(), nil)
	d.copier.EXPECT().Copy(gomock.Any(), "- [A](https://a.com)").Return(clipboard.Result{Strategy: clipboard.StrategySystem}, nil)

	rr, reply := postMessage(t, h, models.CopyAllTabs{})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.MessageReply{OK: true, Strategy: clipboard.StrategySystem, Count: 1}, reply)
}

func TestHandleMessage_CopyAllTabs_SourceError(t *testing.T) {
	h, d := newTestRouter(t)

	d.source.EXPECT().Tabs(gomock.Any()).Return(nil, errors.New("unreadable"))

	rr, reply := postMessage(t, h, models.CopyAllTabs{})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, reply.OK)
	assert.Equal(t, app.MsgInternalError, reply.Error)
}

func TestHandleMessage_BadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown action", body: `{"action":"reloadEverything"}`},
		{name: "open folder without id", body: `{"action":"openFolder"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(t)
			rr, reply := postRaw(t, h, []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.False(t, reply.OK)
			assert.NotEmpty(t, reply.Error)
		})
	}
}

func TestHandleMessage_TooLarge(t *testing.T) {
	h, _ := newTestRouter(t)

	body := `{"action":"copyToClipboard","text":"` + strings.Repeat("a", maxMessageSize) + `"}`
	rr, reply := postRaw(t, h, []byte(body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, ErrMessageTooLarge.Error(), reply.Error)
}

// ── /api/selection, /api/version ─────────────────────────────────────────────

func TestGetSelection(t *testing.T) {
	h, d := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/selection", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tabs":[]}`, rr.Body.String())

	d.session.SetSelected([]models.Tab{{ID: 7, URL: "https://go.dev"}})

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/selection", nil))

	var resp models.SelectionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Tabs, 1)
	assert.Equal(t, 7, resp.Tabs[0].ID)
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.0.0","date":"2026-01-01","commit":"abc"}`, rr.Body.String())
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/messages"},
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/selection"},
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleMessage_TabsSelected_Invalid(t *testing.T) {
	h, d := newTestRouter(t)

	rr, reply := postMessage(t, h, models.TabsSelected{Tabs: []models.Tab{{ID: 1, Title: "no url"}}})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, reply.OK)
	assert.Empty(t, d.session.Selected())
}
