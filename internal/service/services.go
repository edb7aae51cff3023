package service

import (
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/models"
)

// Services is the server-side service layer handed to the handlers and the
// provisioning worker.
type Services struct {
	IdentityService     IdentityService
	DirectoryService    DirectoryService
	StorageService      StorageService
	ProvisioningService ProvisioningService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger.WithComponent("app-info"))
	if err != nil {
		return nil, err
	}

	directory := NewDirectoryService(storages.UserRepository, storages.ResourceRepository, storages.ShareIndexRepository, cfg.Limits, logger.WithComponent("directory"))

	return &Services{
		IdentityService:     NewIdentityService(storages.AccountRepository, cfg.App, logger.WithComponent("identity")),
		DirectoryService:    directory,
		StorageService:      NewStorageService(storages, directory, cfg.Limits, logger.WithComponent("storage")),
		ProvisioningService: NewProvisioningService(storages.ResourceRepository, storages.ChunkStore, cfg.Workers, logger.WithComponent("provisioning")),
		AppInfoService:      appInfo,
	}, nil
}
