package service

import (
	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/host"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/share"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// Dependencies are the collaborators [NewClientServices] wires together.
// Source, Shortener, Background and Session are optional.
type Dependencies struct {
	Storages   *store.ClientStorages
	Source     host.TabSource
	Opener     host.Opener
	Copier     clipboard.Copier
	Links      *share.Links
	Shortener  adapter.Shortener
	Background adapter.BackgroundClient
	Session    *session.Session
	BuildInfo  models.AppBuildInfo
}

type ClientServices struct {
	Tabs     TabProvider
	Copy     CopyService
	Folders  FolderService
	Share    ShareService
	Settings SettingsService
	AppInfo  AppInfoService
}

func NewClientServices(deps Dependencies) *ClientServices {
	tabs := NewTabProvider(deps.Source, deps.Session, deps.Background)
	copySvc := NewCopyService(tabs, deps.Storages.Settings, deps.Copier)

	return &ClientServices{
		Tabs:     tabs,
		Copy:     copySvc,
		Folders:  NewFolderService(deps.Storages.Folders, deps.Storages.Settings, tabs, copySvc, deps.Opener, deps.Session),
		Share:    NewShareService(deps.Storages.Folders, deps.Links, deps.Shortener),
		Settings: NewSettingsService(deps.Storages.Settings, deps.Session),
		AppInfo:  NewAppInfoService(deps.BuildInfo),
	}
}
