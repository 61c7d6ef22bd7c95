package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in ascending priority order.
type configBuilder struct {
	configs []*Config
	environ map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// withDotEnv layers the variables of a .env file under the process
// environment. Real environment variables win.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	vars, err := readDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	environ := processEnviron()
	for k, v := range vars {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}
	b.environ = environ
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.environ == nil {
		b.environ = processEnviron()
	}

	envCfg := &Config{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *Config) *configBuilder {
	if flags != nil {
		b.configs = append(b.configs, flags)
	}
	return b
}

// withFile loads the config file named by any earlier source. The file has
// the lowest priority, so it goes first.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append([]*Config{fileCfg}, b.configs...)
	return b
}
