package store

import (
	"context"

	"github.com/MKhiriev/go-file-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalKeyPairRepository keeps the device-bound keypair of each principal
// that logged in on this device.
type LocalKeyPairRepository interface {
	SaveKeyPair(ctx context.Context, keyPair models.StoredKeyPair) error
	GetKeyPair(ctx context.Context, principal models.Principal) (models.StoredKeyPair, error)
}

// LocalSessionRepository keeps the tokens obtained on this device.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LastSession(ctx context.Context) (models.LocalSession, error)
	DeleteSessions(ctx context.Context) error
}
