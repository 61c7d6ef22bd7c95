package http

import (
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/internal/validators"
)

type Handler struct {
	services *service.ClientServices
	session  *session.Session

	validator validators.Validator
	logger    *logger.Logger
}

func NewHandler(services *service.ClientServices, sess *session.Session, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		session:   sess,
		validator: validators.NewMessageValidator(),
		logger:    logger,
	}
}
