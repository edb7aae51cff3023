package crypto

import "errors"

var (
	ErrIntegrity      = errors.New("content failed integrity check")
	ErrUnwrap         = errors.New("file key cannot be unwrapped with this key pair")
	ErrInvalidKeySize = errors.New("invalid key size")
)
