// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the vault server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Limits  Limits  `envPrefix:"LIMITS_"`

	// ConfigFilePath is the optional path to a JSON or TOML file merged on
	// top of env and flags. Populated via CONFIG or -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds security and token settings of the identity service.
type App struct {
	// PasswordHashKey is the HMAC key for stored account passwords.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the directory and metadata database.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the chunk blob store settings.
type Files struct {
	// BinaryDataDir is the badger directory holding encrypted chunks.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`

	// InMemory keeps chunks in memory only. Meant for tests and demos.
	// Env: STORAGE_FILES_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the resource provisioning job.
type Workers struct {
	// ProvisionInterval is how often pending resources are advanced.
	// Env: WORKERS_PROVISION_INTERVAL
	ProvisionInterval time.Duration `env:"PROVISION_INTERVAL"`

	// ProvisionBatchSize caps the resources advanced per tick.
	// Env: WORKERS_PROVISION_BATCH_SIZE
	ProvisionBatchSize int `env:"PROVISION_BATCH_SIZE"`

	// MaxResources caps the number of provisioned resources; creation
	// beyond it fails with "capacity exhausted". Zero means unlimited.
	// Env: WORKERS_MAX_RESOURCES
	MaxResources int `env:"MAX_RESOURCES"`
}

// Limits bounds request sizes accepted by the storage resources.
type Limits struct {
	// MaxChunkSize is the largest encrypted chunk accepted, in bytes.
	// Env: LIMITS_MAX_CHUNK_SIZE
	MaxChunkSize int `env:"MAX_CHUNK_SIZE"`

	// MaxUsersPageSize caps the page size of user listings.
	// Env: LIMITS_MAX_USERS_PAGE_SIZE
	MaxUsersPageSize int `env:"MAX_USERS_PAGE_SIZE"`
}

// MaxRequestBodyBytes is the body limit for chunk-carrying requests:
// base64 inflates the chunk by 4/3, plus room for the JSON envelope.
func (l Limits) MaxRequestBodyBytes() int64 {
	return int64(l.MaxChunkSize)*4/3 + 64*1024
}

// GetStructuredConfig loads, merges, and validates the server
// configuration from defaults, environment, args and the optional file.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder[StructuredConfig]().
		with(defaultServerConfig()).
		withEnv("").
		withFlags(func() (*StructuredConfig, error) { return parseFlags(args) }).
		withFile(func(c *StructuredConfig) string { return c.ConfigFilePath }, parseServerFile).
		build((*StructuredConfig).validate)
}

func defaultServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-file-vault",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			ProvisionInterval:  time.Second,
			ProvisionBatchSize: 16,
		},
		Limits: Limits{
			MaxChunkSize:     DefaultChunkSize + ChunkSealOverhead,
			MaxUsersPageSize: 100,
		},
	}
}
