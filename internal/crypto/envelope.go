// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-file-vault/models"
)

const (
	// FileKeySize is the size of a content key (AES-256).
	FileKeySize = 32
	// WrappedKeySize is the size of a FileKey sealed with an anonymous box.
	WrappedKeySize = FileKeySize + box.AnonymousOverhead
)

type envelopeCrypto struct {
	random io.Reader
}

// NewEnvelopeCrypto returns the AES-256-GCM / NaCl sealed-box implementation
// of [EnvelopeCrypto].
func NewEnvelopeCrypto() EnvelopeCrypto {
	return &envelopeCrypto{random: rand.Reader}
}

func (e *envelopeCrypto) GenerateFileKey() ([]byte, error) {
	key := make([]byte, FileKeySize)
	if _, err := io.ReadFull(e.random, key); err != nil {
		return nil, fmt.Errorf("generate file key: %w", err)
	}
	return key, nil
}

func (e *envelopeCrypto) EncryptContent(fileKey, plaintext []byte) ([]byte, error) {
	return sealGCM(fileKey, plaintext)
}

func (e *envelopeCrypto) DecryptContent(fileKey, ciphertext []byte) ([]byte, error) {
	return openGCM(fileKey, ciphertext)
}

// WrapKey seals fileKey with an anonymous box: an ephemeral sender key is
// generated per call, so the output carries no information about the caller.
func (e *envelopeCrypto) WrapKey(fileKey, recipientPublicKey []byte) (models.WrappedKey, error) {
	if len(fileKey) != FileKeySize {
		return nil, fmt.Errorf("%w: file key is %d bytes", ErrInvalidKeySize, len(fileKey))
	}
	recipient, err := toKey(recipientPublicKey)
	if err != nil {
		return nil, err
	}

	wrapped, err := box.SealAnonymous(nil, fileKey, recipient, e.random)
	if err != nil {
		return nil, fmt.Errorf("wrap file key: %w", err)
	}
	return wrapped, nil
}

func (e *envelopeCrypto) UnwrapKey(wrapped models.WrappedKey, ownPublicKey, ownPrivateKey []byte) ([]byte, error) {
	public, err := toKey(ownPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnwrap, err)
	}
	private, err := toKey(ownPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnwrap, err)
	}

	fileKey, ok := box.OpenAnonymous(nil, wrapped, public, private)
	if !ok || len(fileKey) != FileKeySize {
		return nil, ErrUnwrap
	}
	return fileKey, nil
}

func (e *envelopeCrypto) GenerateKeyPair() (models.KeyPair, error) {
	public, private, err := box.GenerateKey(e.random)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate key pair: %w", err)
	}
	return models.KeyPair{Public: public[:], Private: private[:]}, nil
}

func toKey(b []byte) (*[32]byte, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidKeySize, len(b))
	}
	var key [32]byte
	copy(key[:], b)
	return &key, nil
}
