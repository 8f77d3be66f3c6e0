package config

import "errors"

// ErrInvalidValue marks configuration values that were rejected
var ErrInvalidValue = errors.New("invalid config value")
