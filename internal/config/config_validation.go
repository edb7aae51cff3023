// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged server config can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.BinaryDataDir == "" && !cfg.Storage.Files.InMemory {
		return fmt.Errorf("%w: chunk store directory is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.ProvisionInterval <= 0 || cfg.Workers.ProvisionBatchSize <= 0 || cfg.Workers.MaxResources < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	t := cfg.Transfer
	if t.ChunkSize <= 0 || t.MaxFileSize < t.ChunkSize || t.UploadConcurrency < 1 || t.UploadConcurrency > MaxUploadConcurrency {
		return fmt.Errorf("%w: chunk size %d, max file size %d, concurrency %d (1..%d)",
			ErrInvalidTransferConfigs, t.ChunkSize, t.MaxFileSize, t.UploadConcurrency, MaxUploadConcurrency)
	}

	p := cfg.Provisioning
	if p.RetryDelay < 0 || p.MaxAttempts < 1 || p.MaxAttemptsAfterRegistration < p.MaxAttempts {
		return ErrInvalidProvisioningConfigs
	}

	return nil
}
