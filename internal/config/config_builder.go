package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder merges configuration sources in the order they are added;
// non-zero fields of later sources win.
type configBuilder[T any] struct {
	configs []*T
	err     error
}

func newConfigBuilder[T any]() *configBuilder[T] {
	return &configBuilder[T]{
		configs: make([]*T, 0, 4),
	}
}

func (b *configBuilder[T]) build(validate func(*T) error) (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if validate == nil {
		return config, nil
	}
	return config, validate(config)
}

func (b *configBuilder[T]) with(cfg *T) *configBuilder[T] {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder[T]) withEnv(prefix string) *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg, prefix); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder[T]) withFlags(parse func() (*T, error)) *configBuilder[T] {
	flags, err := parse()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withFile parses the config file named by the last source that set a path.
func (b *configBuilder[T]) withFile(pathOf func(*T) string, parse func(string) (*T, error)) *configBuilder[T] {
	var path string
	for _, cfg := range b.configs {
		if p := pathOf(cfg); p != "" {
			path = p
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parse(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)
	return b
}
