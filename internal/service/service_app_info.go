package service

import (
	"context"

	"github.com/cadastrolabs/cadastro/internal/config"
	"github.com/cadastrolabs/cadastro/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService exposing the configured
// application version. An empty version is a deployment mistake and fails
// construction.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
