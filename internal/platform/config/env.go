// Package config loads command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by this module.
const EnvPrefix = "SESSIONSEARCH_"

// ParseEnv loads configuration from environment variables whose names start
// with EnvPrefix. Struct tags carry the unprefixed name.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, EnvPrefix)
}

// ParseEnvWithPrefix loads configuration from environment variables using the
// provided prefix. An empty prefix reads tag names verbatim.
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
