package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs: missing server URL or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: empty DSN, in-memory client DSN, or no chunk
	// store directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: missing signing or hashing keys.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: zero provisioning interval or batch size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs: missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTransferConfigs: chunk size, file size or concurrency out of range.
	ErrInvalidTransferConfigs = errors.New("invalid transfer configuration")
	// ErrInvalidProvisioningConfigs: retry bounds out of range.
	ErrInvalidProvisioningConfigs = errors.New("invalid provisioning configuration")
)
