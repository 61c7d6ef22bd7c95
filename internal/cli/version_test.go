package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

func TestVersion(t *testing.T) {
	buf := captureOutput(t)
	info := service.NewAppInfoService(models.NewAppBuildInfo("1.2.0", "", "abc"))

	require.NoError(t, VersionCmd{info: info}.Run(context.Background(), VersionInput{}))

	assert.Contains(t, buf.String(), "1.2.0")
	assert.Contains(t, buf.String(), "N/A")
	assert.NotContains(t, buf.String(), "daemon")
}

func TestVersion_WithDaemonJSON(t *testing.T) {
	buf := captureOutput(t)
	d := newTestDeps(t)
	info := service.NewAppInfoService(models.NewAppBuildInfo("1.2.0", "2026-01-01", "abc"))

	d.background.EXPECT().Version(gomock.Any()).
		Return(models.VersionResponse{Version: "1.1.0", Date: "2025-12-01", Commit: "def"}, nil)

	err := VersionCmd{info: info, daemon: d.background}.Run(context.Background(), VersionInput{Output: outputJSON})
	require.NoError(t, err)

	var got struct {
		Client models.VersionResponse  `json:"client"`
		Daemon *models.VersionResponse `json:"daemon"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1.2.0", got.Client.Version)
	require.NotNil(t, got.Daemon)
	assert.Equal(t, "1.1.0", got.Daemon.Version)
}
