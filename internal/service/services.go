package service

import (
	"github.com/cadastrolabs/cadastro/internal/config"
	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/store"
	"github.com/cadastrolabs/cadastro/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AddressService AddressService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewEntityValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.CredentialRepository, validator, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, validator, cfg.App, logger),
		AddressService: NewAddressService(storages.AddressRepository, storages.UserRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
