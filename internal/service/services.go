package service

import (
	"github.com/MKhiriev/staff-keeper/internal/config"
	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/store"
)

type Services struct {
	UserService UserService
	AuthService AuthService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, logger),
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
	}
}
