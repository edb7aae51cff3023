package service

import (
	"github.com/MKhiriev/go-file-vault/internal/adapter"
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/crypto"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
)

type ClientServices struct {
	Session             *SessionHub
	IdentityService     ClientIdentityService
	KeyService          ClientKeyService
	TransferService     ClientTransferService
	SharingService      ClientSharingService
	RequestService      ClientRequestService
	ProvisioningService ClientProvisioningService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, passphrase PassphraseFunc, log *logger.Logger) *ClientServices {
	envelope := crypto.NewEnvelopeCrypto()
	hub := NewSessionHub()

	keySvc := NewClientKeyService(localStore.KeyPairs, crypto.NewKeyChainService(), envelope, passphrase, log.WithComponent("keys"))
	transferSvc := NewClientTransferService(serverAdapter, envelope, keySvc, cfg.Transfer, log.WithComponent("transfer"))

	return &ClientServices{
		Session:             hub,
		IdentityService:     NewClientIdentityService(serverAdapter, localStore.Sessions, keySvc, hub, log.WithComponent("identity")),
		KeyService:          keySvc,
		TransferService:     transferSvc,
		SharingService:      NewClientSharingService(serverAdapter, serverAdapter, envelope, keySvc, hub, log.WithComponent("sharing")),
		RequestService:      NewClientRequestService(serverAdapter, transferSvc, hub),
		ProvisioningService: NewClientProvisioningService(serverAdapter, serverAdapter, keySvc, hub, cfg.Provisioning, log.WithComponent("provisioning")),
	}
}
