package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/host"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/internal/validators"
	"github.com/MKhiriev/go-tab-keeper/models"
)

var errorStatusMap = map[error]int{
	models.ErrUnknownAction:  http.StatusBadRequest,
	models.ErrInvalidMessage: http.StatusBadRequest,
	ErrMessageTooLarge:       http.StatusRequestEntityTooLarge,

	validators.ErrEmptyText:     http.StatusBadRequest,
	validators.ErrEmptyFolderID: http.StatusBadRequest,
	validators.ErrEmptyTabURL:   http.StatusBadRequest,
	validators.ErrInvalidTabID:  http.StatusBadRequest,
	validators.ErrDuplicateTab:  http.StatusBadRequest,
	validators.ErrTooManyTabs:   http.StatusRequestEntityTooLarge,

	service.ErrFolderNotFound: http.StatusNotFound,
	service.ErrNoTabs:         http.StatusConflict,
	service.ErrNoTabsSelected: http.StatusConflict,
	service.ErrNothingToOpen:  http.StatusConflict,
	service.ErrOpeningTabs:    http.StatusBadGateway,

	host.ErrNoTabSource:              http.StatusConflict,
	host.ErrReadingTabs:              http.StatusInternalServerError,
	clipboard.ErrAllStrategiesFailed: http.StatusServiceUnavailable,

	store.ErrReadingStorage:   http.StatusInternalServerError,
	store.ErrWritingStorage:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
