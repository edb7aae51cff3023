package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// serverFileConfig is the on-disk layout of the server config file.
type serverFileConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key" toml:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration   Duration `json:"token_duration" toml:"token_duration"`
		Version         string   `json:"version" toml:"version"`
		LogLevel        string   `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`

		Files struct {
			BinaryDataDir string `json:"binary_data_dir" toml:"binary_data_dir"`
			InMemory      bool   `json:"in_memory" toml:"in_memory"`
		} `json:"files" toml:"files"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Workers struct {
		ProvisionInterval  Duration `json:"provision_interval" toml:"provision_interval"`
		ProvisionBatchSize int      `json:"provision_batch_size" toml:"provision_batch_size"`
		MaxResources       int      `json:"max_resources" toml:"max_resources"`
	} `json:"workers" toml:"workers"`

	Limits struct {
		MaxChunkSize     int `json:"max_chunk_size" toml:"max_chunk_size"`
		MaxUsersPageSize int `json:"max_users_page_size" toml:"max_users_page_size"`
	} `json:"limits" toml:"limits"`
}

// clientFileConfig is the on-disk layout of the client config file.
type clientFileConfig struct {
	App struct {
		LogLevel string `json:"log_level" toml:"log_level"`
		LogPath  string `json:"log_path" toml:"log_path"`
	} `json:"app" toml:"app"`

	Adapter struct {
		ServerURL      string   `json:"server_url" toml:"server_url"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Transfer struct {
		ChunkSize         int `json:"chunk_size" toml:"chunk_size"`
		MaxFileSize       int `json:"max_file_size" toml:"max_file_size"`
		UploadConcurrency int `json:"upload_concurrency" toml:"upload_concurrency"`
	} `json:"transfer" toml:"transfer"`

	Provisioning struct {
		RetryDelay                   Duration `json:"retry_delay" toml:"retry_delay"`
		MaxAttempts                  int      `json:"max_attempts" toml:"max_attempts"`
		MaxAttemptsAfterRegistration int      `json:"max_attempts_after_registration" toml:"max_attempts_after_registration"`
	} `json:"provisioning" toml:"provisioning"`
}

func parseServerFile(path string) (*StructuredConfig, error) {
	var f serverFileConfig
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: f.App.PasswordHashKey,
			TokenSignKey:    f.App.TokenSignKey,
			TokenIssuer:     f.App.TokenIssuer,
			TokenDuration:   time.Duration(f.App.TokenDuration),
			Version:         f.App.Version,
			LogLevel:        f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
			Files: Files{
				BinaryDataDir: f.Storage.Files.BinaryDataDir,
				InMemory:      f.Storage.Files.InMemory,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Workers: Workers{
			ProvisionInterval:  time.Duration(f.Workers.ProvisionInterval),
			ProvisionBatchSize: f.Workers.ProvisionBatchSize,
			MaxResources:       f.Workers.MaxResources,
		},
		Limits: Limits{
			MaxChunkSize:     f.Limits.MaxChunkSize,
			MaxUsersPageSize: f.Limits.MaxUsersPageSize,
		},
	}, nil
}

func parseClientFile(path string) (*ClientConfig, error) {
	var f clientFileConfig
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	return &ClientConfig{
		App: ClientApp{LogLevel: f.App.LogLevel, LogPath: f.App.LogPath},
		Adapter: ClientAdapter{
			ServerURL:      f.Adapter.ServerURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Storage: ClientStorage{DB: ClientDB{DSN: f.Storage.DB.DSN}},
		Transfer: ClientTransfer{
			ChunkSize:         f.Transfer.ChunkSize,
			MaxFileSize:       f.Transfer.MaxFileSize,
			UploadConcurrency: f.Transfer.UploadConcurrency,
		},
		Provisioning: ClientProvisioning{
			RetryDelay:                   time.Duration(f.Provisioning.RetryDelay),
			MaxAttempts:                  f.Provisioning.MaxAttempts,
			MaxAttemptsAfterRegistration: f.Provisioning.MaxAttemptsAfterRegistration,
		},
	}, nil
}

// decodeFile picks the decoder by extension: .toml is TOML, anything else
// is JSON.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error decoding json configs: %w", err)
		}
	}
	return nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML. JSON numbers are read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
