package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tab-keeper/internal/mock"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/models"
)

func sampleTabs() []models.Tab {
	return []models.Tab{
		{ID: 1, Title: "A", URL: "https://a.com", Index: 0},
		{ID: 2, Title: "B", URL: "https://b.com", Index: 1},
	}
}

// ── Current ──────────────────────────────────────────────────────────────────

func TestTabProvider_Current_FromSourceCachesInSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockTabSource(ctrl)
	sess := session.New()
	ctx := context.Background()

	source.EXPECT().Tabs(ctx).Return(sampleTabs(), nil)

	tabs, err := NewTabProvider(source, sess, nil).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTabs(), tabs)
	assert.Equal(t, sampleTabs(), sess.Tabs())
}

func TestTabProvider_Current_SessionWithoutSource(t *testing.T) {
	sess := session.New()
	sess.SetTabs(sampleTabs())

	tabs, err := NewTabProvider(nil, sess, nil).Current(context.Background())
	require.NoError(t, err)
	assert.Len(t, tabs, 2)
}

func TestTabProvider_Current_Empty(t *testing.T) {
	_, err := NewTabProvider(nil, session.New(), nil).Current(context.Background())
	assert.ErrorIs(t, err, ErrNoTabs)

	_, err = NewTabProvider(nil, nil, nil).Current(context.Background())
	assert.ErrorIs(t, err, ErrNoTabs)
}

func TestTabProvider_Current_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockTabSource(ctrl)
	boom := errors.New("boom")

	source.EXPECT().Tabs(gomock.Any()).Return(nil, boom)

	_, err := NewTabProvider(source, nil, nil).Current(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ── Selected ─────────────────────────────────────────────────────────────────

func TestTabProvider_Selected_PrefersSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockTabSource(ctrl)
	background := mock.NewMockBackgroundClient(ctrl)
	sess := session.New()
	sess.SetSelected(sampleTabs()[:1])

	tabs, err := NewTabProvider(source, sess, background).Selected(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleTabs()[:1], tabs)
}

func TestTabProvider_Selected_FallsBackToDaemon(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockTabSource(ctrl)
	background := mock.NewMockBackgroundClient(ctrl)

	background.EXPECT().Selection(gomock.Any()).Return(sampleTabs()[1:], nil)

	tabs, err := NewTabProvider(source, session.New(), background).Selected(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleTabs()[1:], tabs)
}

func TestTabProvider_Selected_DaemonDownUsesHighlighted(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockTabSource(ctrl)
	background := mock.NewMockBackgroundClient(ctrl)

	gomock.InOrder(
		background.EXPECT().Selection(gomock.Any()).Return(nil, errors.New("connection refused")),
		source.EXPECT().Highlighted(gomock.Any()).Return(sampleTabs(), nil),
	)

	tabs, err := NewTabProvider(source, nil, background).Selected(context.Background())
	require.NoError(t, err)
	assert.Len(t, tabs, 2)
}

func TestTabProvider_Selected_Nothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockTabSource(ctrl)
	source.EXPECT().Highlighted(gomock.Any()).Return([]models.Tab{}, nil)

	_, err := NewTabProvider(source, nil, nil).Selected(context.Background())
	assert.ErrorIs(t, err, ErrNoTabsSelected)
}
