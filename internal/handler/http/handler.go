package http

import (
	"github.com/MKhiriev/staff-keeper/internal/config"
	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/service"
	"github.com/MKhiriev/staff-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// adminCreationKey guards POST /users/admin. An empty key disables the
	// route: every request is rejected, never silently allowed.
	adminCreationKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		validator:        validators.NewUserRequestValidator(),
		adminCreationKey: cfg.AdminCreationKey,
		logger:           logger,
	}
}
