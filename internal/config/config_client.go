package config

import (
	"time"
)

// ClientConfig is the configuration of the vault client.
// Env variables carry the VAULT_ prefix, e.g. VAULT_ADAPTER_SERVER_URL.
type ClientConfig struct {
	App          ClientApp          `envPrefix:"APP_"`
	Adapter      ClientAdapter      `envPrefix:"ADAPTER_"`
	Storage      ClientStorage      `envPrefix:"STORAGE_"`
	Transfer     ClientTransfer     `envPrefix:"TRANSFER_"`
	Provisioning ClientProvisioning `envPrefix:"PROVISIONING_"`

	ConfigFilePath string `env:"CONFIG"`
}

// ClientApp holds logging settings. The terminal belongs to the UI, so
// logs go to LogPath.
type ClientApp struct {
	LogLevel string `env:"LOG_LEVEL"`
	LogPath  string `env:"LOG_PATH"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the vault server, e.g. http://localhost:8080.
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds the local key store location.
type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB is the SQLite DSN of the local key store.
type ClientDB struct {
	DSN string `env:"DSN"`
}

// ClientTransfer tunes chunked uploads.
type ClientTransfer struct {
	// ChunkSize is the size of every chunk but the last, in bytes.
	ChunkSize int `env:"CHUNK_SIZE"`
	// MaxFileSize is the largest ciphertext accepted for upload.
	MaxFileSize int `env:"MAX_FILE_SIZE"`
	// UploadConcurrency bounds in-flight chunks after chunk 0.
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY"`
}

// ClientProvisioning tunes resource resolution retries.
type ClientProvisioning struct {
	RetryDelay                   time.Duration `env:"RETRY_DELAY"`
	MaxAttempts                  int           `env:"MAX_ATTEMPTS"`
	MaxAttemptsAfterRegistration int           `env:"MAX_ATTEMPTS_AFTER_REGISTRATION"`
}

const (
	DefaultChunkSize                    = 2_000_000
	ChunkSealOverhead                   = 28 // AES-GCM nonce and tag
	DefaultMaxFileSize                  = 100 * 1024 * 1024
	MaxUploadConcurrency                = 5
	DefaultRetryDelay                   = 2 * time.Second
	DefaultMaxAttempts                  = 5
	DefaultMaxAttemptsAfterRegistration = 20
)

// GetClientConfig builds and validates the client configuration from
// defaults, VAULT_-prefixed environment and the optional config file.
// A non-empty configPath overrides VAULT_CONFIG. overrides is merged last;
// the CLI uses it for flags such as --server.
func GetClientConfig(configPath string, overrides *ClientConfig) (*ClientConfig, error) {
	b := newConfigBuilder[ClientConfig]().
		with(DefaultClientConfig()).
		withEnv("VAULT_")
	if configPath != "" {
		b.with(&ClientConfig{ConfigFilePath: configPath})
	}
	b.withFile(func(c *ClientConfig) string { return c.ConfigFilePath }, parseClientFile)
	if overrides != nil {
		b.with(overrides)
	}

	return b.build((*ClientConfig).validate)
}

// DefaultClientConfig returns the built-in client settings.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{LogLevel: "info"},
		Adapter: ClientAdapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: time.Minute,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "vault.db"}},
		Transfer: ClientTransfer{
			ChunkSize:         DefaultChunkSize,
			MaxFileSize:       DefaultMaxFileSize,
			UploadConcurrency: MaxUploadConcurrency,
		},
		Provisioning: ClientProvisioning{
			RetryDelay:                   DefaultRetryDelay,
			MaxAttempts:                  DefaultMaxAttempts,
			MaxAttemptsAfterRegistration: DefaultMaxAttemptsAfterRegistration,
		},
	}
}
