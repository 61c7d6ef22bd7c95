package http

import (
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.services.AppInfo.Version(r.Context()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getVersion").Msg("error writing response")
	}
}

func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	resp := models.SelectionResponse{Tabs: h.session.Selected()}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSelection").Msg("error writing response")
	}
}
