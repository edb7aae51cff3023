package service

import (
	"context"

	"github.com/MKhiriev/go-file-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientIdentityService obtains a token for this device and restores it
// between runs.
type ClientIdentityService interface {
	// SignUp creates an account, stores its token and creates the device key
	// pair sealed with password.
	SignUp(ctx context.Context, login, password string) (models.Principal, error)

	// Login authenticates, stores the token and unlocks (or creates) the
	// device key pair with password.
	Login(ctx context.Context, login, password string) (models.Principal, error)

	// Restore loads the last token saved on this device into the adapter.
	// It returns ErrAnonymousCaller when there is none.
	Restore(ctx context.Context) (models.LocalSession, error)

	// Logout forgets the saved token and locks the key pair.
	Logout(ctx context.Context) error
}

// ClientKeyService is the local key capability: the device-bound X25519
// key pair of the current principal.
type ClientKeyService interface {
	// Unlock opens the stored key pair of principal with passphrase, or
	// generates and stores a new one on first use.
	Unlock(ctx context.Context, principal models.Principal, passphrase string) (models.KeyPair, error)

	// UsePrincipal selects whose key pair the other methods operate on
	// without unlocking it.
	UsePrincipal(principal models.Principal)

	// OwnPublicKey returns the stored public key. It needs no passphrase.
	OwnPublicKey(ctx context.Context) ([]byte, error)

	// OwnKeyPair returns the unlocked key pair, asking for the passphrase
	// if the pair is still locked. Fails with ErrKeyUnavailable when this
	// device holds no key pair for the principal.
	OwnKeyPair(ctx context.Context) (models.KeyPair, error)

	// Lock drops the unlocked private key from memory.
	Lock()
}

// ClientTransferService is the chunked transfer engine.
type ClientTransferService interface {
	// Upload encrypts req.Content under a fresh file key and sends it in
	// chunks. An aborted upload returns the UploadAborted phase and no error.
	Upload(ctx context.Context, req models.UploadRequest, abort *models.AbortToken) (models.UploadResult, error)

	// Download fetches every chunk of ref in order and decrypts the result.
	// progress may be nil.
	Download(ctx context.Context, ref models.FileRef, progress func(models.Progress)) (models.DownloadedFile, error)
}

// ClientSharingService manages who may read the caller's files and what
// others shared with the caller.
type ClientSharingService interface {
	Share(ctx context.Context, fileID models.FileID, recipients []models.Principal) error
	Revoke(ctx context.Context, fileID models.FileID, recipients []models.Principal) error
	ListOwned(ctx context.Context) ([]models.FileRecord, error)
	ListSharedIn(ctx context.Context) ([]models.SharedResource, error)
	ResolveFile(ctx context.Context, resource string, fileID models.FileID) (models.FileRef, error)
	AllowedUsers(ctx context.Context, fileID models.FileID) ([]models.PublicUser, error)

	// Delete removes an owned file together with its shares.
	Delete(ctx context.Context, fileID models.FileID) error

	// FindUsers searches the directory for recipients.
	FindUsers(ctx context.Context, query models.UsersQuery) (models.UsersPage, error)
}

// ClientRequestService drives requested uploads: the owner asks for a file,
// someone else claims the alias and uploads it for the owner.
type ClientRequestService interface {
	RequestUpload(ctx context.Context, fileName string) (models.UploadRequestRef, error)
	Inspect(ctx context.Context, ref models.UploadRequestRef) (models.AliasInfo, error)
	Claim(ctx context.Context, ref models.UploadRequestRef, contentType string, content []byte, abort *models.AbortToken) (models.UploadResult, error)
}

// ClientProvisioningService resolves the session's storage resource and
// registers usernames.
type ClientProvisioningService interface {
	// Resolve runs session resolution with the session attempt bound.
	Resolve(ctx context.Context) (models.ProvisioningResult, error)

	// Register picks a username and then resolves with the post-registration
	// attempt bound.
	Register(ctx context.Context, username string) (models.ProvisioningResult, error)

	// WhoAmI refreshes the session's user.
	WhoAmI(ctx context.Context) (*models.PublicUser, error)
}
