// SPDX-License-Identifier: MPL-2.0

package config

import (
	"github.com/spf13/viper"
)

const (
	// envPrefix namespaces every launcher environment variable.
	envPrefix = "GIG"

	// defaultLogLevel keeps the launcher quiet unless something is wrong.
	defaultLogLevel = "warn"
)

// Settings are the launcher's own environment-driven knobs, distinct from
// the per-identity TOML configuration. They are read once at startup.
type Settings struct {
	// IdentityOverride takes precedence over the executable's file name
	// when non-empty (GIG_OVERRIDE).
	IdentityOverride string

	// LogLevel controls diagnostic verbosity (GIG_LOG).
	LogLevel string
}

// LoadSettings reads the launcher's environment settings. Unset variables
// fall back to defaults; this never fails.
func LoadSettings() Settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	v.SetDefault("override", "")
	v.SetDefault("log", defaultLogLevel)

	// GIG_OVERRIDE and GIG_LOG.
	_ = v.BindEnv("override")
	_ = v.BindEnv("log")

	return Settings{
		IdentityOverride: v.GetString("override"),
		LogLevel:         v.GetString("log"),
	}
}
