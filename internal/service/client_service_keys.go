package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-file-vault/internal/crypto"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/models"
)

// PassphraseFunc asks the user for the passphrase that seals the device
// private key.
type PassphraseFunc func(ctx context.Context) (string, error)

type clientKeyService struct {
	keyPairs   store.LocalKeyPairRepository
	keyChain   crypto.KeyChainService
	envelope   crypto.EnvelopeCrypto
	passphrase PassphraseFunc
	logger     *logger.Logger

	mu        sync.Mutex
	principal models.Principal
	unlocked  *models.KeyPair
}

func NewClientKeyService(keyPairs store.LocalKeyPairRepository, keyChain crypto.KeyChainService, envelope crypto.EnvelopeCrypto, passphrase PassphraseFunc, logger *logger.Logger) ClientKeyService {
	return &clientKeyService{
		keyPairs:   keyPairs,
		keyChain:   keyChain,
		envelope:   envelope,
		passphrase: passphrase,
		logger:     logger,
	}
}

func (k *clientKeyService) Unlock(ctx context.Context, principal models.Principal, passphrase string) (models.KeyPair, error) {
	if principal.IsAnonymous() {
		return models.KeyPair{}, ErrAnonymousCaller
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	stored, err := k.keyPairs.GetKeyPair(ctx, principal)
	switch {
	case errors.Is(err, store.ErrKeyPairNotFound):
		kp, err := k.createKeyPair(ctx, principal, passphrase)
		if err != nil {
			return models.KeyPair{}, err
		}
		k.principal, k.unlocked = principal, &kp
		return kp, nil
	case err != nil:
		return models.KeyPair{}, fmt.Errorf("error loading key pair: %w", err)
	}

	kp, err := k.open(stored, passphrase)
	if err != nil {
		return models.KeyPair{}, err
	}
	k.principal, k.unlocked = principal, &kp

	return kp, nil
}

func (k *clientKeyService) UsePrincipal(principal models.Principal) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.principal != principal {
		k.unlocked = nil
	}
	k.principal = principal
}

func (k *clientKeyService) OwnPublicKey(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	principal, unlocked := k.principal, k.unlocked
	k.mu.Unlock()

	if principal.IsAnonymous() {
		return nil, ErrAnonymousCaller
	}
	if unlocked != nil {
		return unlocked.Public, nil
	}

	stored, err := k.keyPairs.GetKeyPair(ctx, principal)
	if errors.Is(err, store.ErrKeyPairNotFound) {
		return nil, fmt.Errorf("%w: no key pair on this device", ErrKeyUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading key pair: %w", err)
	}

	return stored.PublicKey, nil
}

func (k *clientKeyService) OwnKeyPair(ctx context.Context) (models.KeyPair, error) {
	k.mu.Lock()
	principal, unlocked := k.principal, k.unlocked
	k.mu.Unlock()

	if principal.IsAnonymous() {
		return models.KeyPair{}, ErrAnonymousCaller
	}
	if unlocked != nil {
		return *unlocked, nil
	}

	stored, err := k.keyPairs.GetKeyPair(ctx, principal)
	if errors.Is(err, store.ErrKeyPairNotFound) {
		return models.KeyPair{}, fmt.Errorf("%w: no key pair on this device", ErrKeyUnavailable)
	}
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error loading key pair: %w", err)
	}

	if k.passphrase == nil {
		return models.KeyPair{}, ErrNoPassphrase
	}
	passphrase, err := k.passphrase(ctx)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrNoPassphrase, err)
	}

	kp, err := k.open(stored, passphrase)
	if err != nil {
		return models.KeyPair{}, err
	}

	k.mu.Lock()
	if k.principal == principal {
		k.unlocked = &kp
	}
	k.mu.Unlock()

	return kp, nil
}

func (k *clientKeyService) Lock() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.unlocked = nil
}

func (k *clientKeyService) createKeyPair(ctx context.Context, principal models.Principal, passphrase string) (models.KeyPair, error) {
	kp, err := k.envelope.GenerateKeyPair()
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error generating key pair: %w", err)
	}

	salt, err := k.keyChain.GenerateSalt()
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error generating salt: %w", err)
	}

	sealed, err := k.keyChain.Seal(kp.Private, k.keyChain.DeriveKEK(passphrase, salt))
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error sealing private key: %w", err)
	}

	err = k.keyPairs.SaveKeyPair(ctx, models.StoredKeyPair{
		Principal:        principal,
		PublicKey:        kp.Public,
		SealedPrivateKey: sealed,
		Salt:             salt,
	})
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error saving key pair: %w", err)
	}

	k.logger.Info().Str("principal", principal.String()).Msg("generated device key pair")

	return kp, nil
}

func (k *clientKeyService) open(stored models.StoredKeyPair, passphrase string) (models.KeyPair, error) {
	private, err := k.keyChain.Open(stored.SealedPrivateKey, k.keyChain.DeriveKEK(passphrase, stored.Salt))
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: wrong passphrase: %w", ErrKeyUnavailable, err)
	}

	return models.KeyPair{Public: stored.PublicKey, Private: private}, nil
}
