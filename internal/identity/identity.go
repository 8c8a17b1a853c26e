// SPDX-License-Identifier: MPL-2.0

// Package identity determines the logical name the launcher is operating
// under. The identity drives config-file lookup, default program naming,
// and every log line, so failing to resolve it is a fatal startup error.
package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gig-cli/internal/platform"
)

// ErrUnresolvable is the sentinel error wrapped when no identity can be
// derived from the environment or the running executable.
var ErrUnresolvable = errors.New("identity unresolvable")

// Identity is the logical name under which the launcher is currently
// operating. It is resolved once at process start and passed by value;
// it is never mutated afterwards.
type Identity string

// String returns the identity as a plain string.
func (i Identity) String() string { return string(i) }

// ConfigFileName returns the name of the configuration file the launcher
// looks for, <identity>.toml.
func (i Identity) ConfigFileName() string { return string(i) + ".toml" }

// ExecutableName returns the platform-appropriate executable file name for
// the identity: <identity>.exe on Windows, the bare identity elsewhere.
func (i Identity) ExecutableName() string { return platform.ExecutableName(string(i)) }

// Resolve determines the effective identity. A non-empty override wins
// verbatim; otherwise the identity is the file-name stem (extension
// stripped) of the currently running executable.
func Resolve(override string) (Identity, error) {
	if override != "" {
		return Identity(override), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: can't access own executable path: %w", ErrUnresolvable, err)
	}

	return FromExecutable(exe)
}

// FromExecutable derives an identity from an executable path by taking the
// base name and stripping its extension.
func FromExecutable(exe string) (Identity, error) {
	base := filepath.Base(exe)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// A leading-dot name like ".hidden" is all extension to
		// filepath.Ext; the whole base is the stem then.
		stem = base
	}
	if stem == string(filepath.Separator) || stem == "." {
		return "", fmt.Errorf("%w: executable path %q has no usable file name", ErrUnresolvable, exe)
	}
	return Identity(stem), nil
}
