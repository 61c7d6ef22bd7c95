package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/crypto"
)

func newShareCmd(d testDeps) ShareCmd {
	return ShareCmd{
		share:   d.services.Share,
		folders: FoldersCmd{folders: d.services.Folders},
		copy:    d.services.Copy,
	}
}

func shareLink(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), testViewerURL) {
			return strings.TrimSpace(line)
		}
	}
	t.Fatalf("no share link in output:\n%s", out)
	return ""
}

func TestShare_CreateOpenImport(t *testing.T) {
	buf := captureOutput(t)
	d := newTestDeps(t)
	d.folder(t, "Research", sessionTabs)
	s := newShareCmd(d)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, ShareCreateInput{Folder: "Research", Password: "secret123", NoShorten: true}))
	link := shareLink(t, buf.String())

	buf.Reset()
	require.NoError(t, s.Open(ctx, ShareOpenInput{URL: link, Password: "secret123"}))
	assert.Contains(t, buf.String(), "Research")
	assert.Contains(t, buf.String(), "https://go.dev/blog")

	buf.Reset()
	require.NoError(t, s.Import(ctx, ShareOpenInput{URL: link, Password: "secret123"}))
	assert.Contains(t, buf.String(), `Imported "Research"`)

	folders, err := d.storages.Folders.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 2)
}

func TestShare_WrongPassword(t *testing.T) {
	buf := captureOutput(t)
	d := newTestDeps(t)
	d.folder(t, "Research", sessionTabs)
	s := newShareCmd(d)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, ShareCreateInput{Folder: "Research", Password: "secret123", NoShorten: true}))

	err := s.Open(ctx, ShareOpenInput{URL: shareLink(t, buf.String()), Password: "nope"})
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestShare_CreateWithoutShortenerWarnsAndCopies(t *testing.T) {
	buf := captureOutput(t)
	d := newTestDeps(t)
	d.folder(t, "Research", sessionTabs)

	d.copier.EXPECT().Copy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, text string) (clipboard.Result, error) {
			assert.True(t, strings.HasPrefix(text, testViewerURL))
			return clipboard.Result{Strategy: clipboard.StrategyFile}, nil
		})

	err := newShareCmd(d).Create(context.Background(), ShareCreateInput{Folder: "Research", Password: "pw", Copy: true})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Link shortener unavailable")
	assert.Contains(t, buf.String(), "Link copied (file)")
}
