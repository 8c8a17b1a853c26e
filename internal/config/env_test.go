// SPDX-License-Identifier: MPL-2.0

package config

import (
	"testing"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("GIG_OVERRIDE", "")
	t.Setenv("GIG_LOG", "")

	s := LoadSettings()
	if s.IdentityOverride != "" {
		t.Errorf("expected empty override by default, got %q", s.IdentityOverride)
	}
	if s.LogLevel != defaultLogLevel {
		t.Errorf("expected default log level %q, got %q", defaultLogLevel, s.LogLevel)
	}
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv("GIG_OVERRIDE", "cargo")
	t.Setenv("GIG_LOG", "debug")

	s := LoadSettings()
	if s.IdentityOverride != "cargo" {
		t.Errorf("expected override cargo, got %q", s.IdentityOverride)
	}
	if s.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", s.LogLevel)
	}
}
