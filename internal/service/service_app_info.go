package service

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/models"
)

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) Version(context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version: orNA(s.info.BuildVersion()),
		Date:    orNA(s.info.BuildDate()),
		Commit:  orNA(s.info.BuildCommit()),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
