package config

import "errors"

var (
	ErrParsingEnvironment = errors.New("error parsing environment variables")
	ErrMergingConfigs     = errors.New("error merging configs")
	ErrInvalidConfig      = errors.New("invalid config")
)
