package crypto

import "github.com/MKhiriev/go-file-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EnvelopeCrypto is the client-side envelope encryption scheme.
//
// Every file gets its own random FileKey. Content is encrypted once with
// that key; the key itself is wrapped separately for each reader, so sharing
// a file never touches its content:
//
//	FileKey    = GenerateFileKey()
//	Ciphertext = EncryptContent(FileKey, Plaintext)
//	Wrapped    = WrapKey(FileKey, RecipientPublicKey)   (one per reader)
//	FileKey    = UnwrapKey(Wrapped, OwnPublicKey, OwnPrivateKey)
type EnvelopeCrypto interface {
	// GenerateFileKey returns 32 random bytes for AES-256-GCM.
	GenerateFileKey() ([]byte, error)

	// EncryptContent seals plaintext as nonce || ciphertext || tag.
	EncryptContent(fileKey, plaintext []byte) ([]byte, error)

	// DecryptContent opens a blob produced by EncryptContent. Any truncation,
	// corruption or wrong key yields ErrIntegrity.
	DecryptContent(fileKey, ciphertext []byte) ([]byte, error)

	// WrapKey seals fileKey to recipientPublicKey. Only the holder of the
	// matching private key can recover it.
	WrapKey(fileKey, recipientPublicKey []byte) (models.WrappedKey, error)

	// UnwrapKey recovers a file key. Failure yields ErrUnwrap.
	UnwrapKey(wrapped models.WrappedKey, ownPublicKey, ownPrivateKey []byte) ([]byte, error)

	// GenerateKeyPair creates an X25519 key pair for key wrapping.
	GenerateKeyPair() (models.KeyPair, error)
}

// KeyChainService protects the local private key at rest.
//
//	Salt     = GenerateSalt()
//	KEK      = DeriveKEK(passphrase, Salt)     (Argon2id)
//	Sealed   = Seal(PrivateKey, KEK)           (AES-256-GCM, nonce || ct)
//	PrivKey  = Open(Sealed, KEK)
type KeyChainService interface {
	GenerateSalt() ([]byte, error)
	DeriveKEK(passphrase string, salt []byte) []byte
	Seal(plaintext, kek []byte) ([]byte, error)
	Open(sealed, kek []byte) ([]byte, error)
}
