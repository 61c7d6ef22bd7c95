package share

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tab-keeper/internal/codec"
	"github.com/MKhiriev/go-tab-keeper/internal/crypto"
	"github.com/MKhiriev/go-tab-keeper/internal/mock"
	"github.com/MKhiriev/go-tab-keeper/models"
)

func sampleFolder() models.Folder {
	return models.Folder{
		ID:        "f1",
		Name:      "Research",
		CreatedAt: "2024-01-02T03:04:05.006Z",
		Tabs: []models.CompactTab{
			{Title: "Go", URL: "https://go.dev", FavIconURL: "https://go.dev/favicon.ico"},
			{Title: "Blog", URL: "https://example.com/blog?x=1&y=2"},
		},
	}
}

func newRealLinks(t *testing.T) *Links {
	t.Helper()
	return NewLinks(crypto.NewShareCipher(nil), "https://viewer.example/")
}

func TestLinks_RoundTrip(t *testing.T) {
	l := newRealLinks(t)
	ctx := context.Background()
	folder := sampleFolder()

	link, err := l.BuildShareURL(ctx, folder, "secret123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://viewer.example/share.html#data="), link)

	got, err := l.OpenShareURL(ctx, link, "secret123")
	require.NoError(t, err)
	assert.Equal(t, folder, got)
}

func TestLinks_WrongPassword(t *testing.T) {
	l := newRealLinks(t)
	ctx := context.Background()

	link, err := l.BuildShareURL(ctx, sampleFolder(), "secret123")
	require.NoError(t, err)

	_, err = l.OpenShareURL(ctx, link, "wrong")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestLinks_EmptyFolderKeepsTabsArray(t *testing.T) {
	l := newRealLinks(t)
	ctx := context.Background()

	link, err := l.BuildShareURL(ctx, models.Folder{ID: "e", Name: "Empty"}, "pw")
	require.NoError(t, err)

	got, err := l.OpenShareURL(ctx, link, "pw")
	require.NoError(t, err)
	assert.NotNil(t, got.Tabs)
	assert.Empty(t, got.Tabs)
}

func TestLinks_BuildShareURL_CipherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cipher := mock.NewMockShareCipher(ctrl)
	cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any(), "").Return(models.Envelope{}, crypto.ErrEmptyPassword)

	_, err := NewLinks(cipher, "https://viewer.example").BuildShareURL(context.Background(), sampleFolder(), "")
	assert.ErrorIs(t, err, crypto.ErrEmptyPassword)
}

func TestLinks_OpenShareURL_NotAFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link := "#data=" + codec.BytesToBase64URL([]byte(`{"v":1}`))
	cipher := mock.NewMockShareCipher(ctrl)
	cipher.EXPECT().Decrypt(gomock.Any(), `{"v":1}`, "pw").Return(`["not","a","folder"]`, nil)

	_, err := NewLinks(cipher, "https://viewer.example").OpenShareURL(context.Background(), link, "pw")
	assert.ErrorIs(t, err, ErrInvalidFolder)
}

func TestParseShareURL(t *testing.T) {
	const envelope = `{"v":1,"s":"abc","i":"def","d":"ghi"}`
	encoded := codec.BytesToBase64URL([]byte(envelope))

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "full url", raw: "https://viewer.example/share.html#data=" + encoded, want: envelope},
		{name: "fragment", raw: "#data=" + encoded, want: envelope},
		{name: "bare", raw: "data=" + encoded, want: envelope},
		{name: "surrounding spaces", raw: "  data=" + encoded + "\n", want: envelope},
		{name: "extra params", raw: "https://viewer.example/share.html#v=1&data=" + encoded + "&x=y", want: envelope},
		{name: "padded", raw: "data=" + encoded + strings.Repeat("=", (4-len(encoded)%4)%4), want: envelope},
		{name: "missing", raw: "https://viewer.example/share.html", wantErr: ErrMissingPayload},
		{name: "empty value", raw: "#data=", wantErr: ErrMissingPayload},
		{name: "not base64", raw: "#data=!!!", wantErr: ErrInvalidPayload},
		{name: "not utf8", raw: "#data=" + codec.BytesToBase64URL([]byte{0xff, 0xfe}), wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShareURL(tt.raw)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
