package config

import (
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// build merges all gathered configs in order of addition. Later sources
// do not override values already set by earlier ones, so flags are added
// before environment variables lose, and defaults come last.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, b.err
	}

	config := &StructuredConfig{}
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMergingConfigs, err)
		}
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		b.err = fmt.Errorf("%w: %w", ErrParsingEnvironment, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	if b.err != nil {
		return b
	}

	b.configs = append(b.configs, ParseFlags())
	return b
}
