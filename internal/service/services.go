package service

import (
	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	CapsuleService CapsuleService
	MediaService   MediaService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(storages.UserRepository, storages.ProfileRepository, storages.FileStorage, logger),
		CapsuleService: NewCapsuleService(storages.CapsuleRepository, storages.MediaRepository, storages.ShareRepository, storages.UserRepository, logger),
		MediaService:   NewMediaService(storages.CapsuleRepository, storages.MediaRepository, storages.FileStorage, logger),
	}
}
