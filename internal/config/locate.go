// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gig-cli/internal/identity"
	"gig-cli/internal/issue"
	"gig-cli/internal/platform"

	"github.com/charmbracelet/log"
)

// Loader locates, reads, parses, and lints the launcher's configuration.
// All fields are set once at startup and read-only afterwards.
type Loader struct {
	// Identity names the config file to look for, <identity>.toml.
	Identity identity.Identity

	// WorkDir is the launcher's working directory, the first candidate.
	WorkDir string

	// SystemDir overrides the platform's system-wide config directory.
	// Empty means platform.SystemConfigDir().
	SystemDir string

	// Logger receives discovery traces and lint warnings.
	Logger *log.Logger
}

// Locate probes the ordered candidate directories (working directory, then
// the system-wide configuration directory) for <identity>.toml and returns
// the first path that exists. The boolean is false when no candidate
// contains the file; that is not itself an error.
func (l *Loader) Locate() (string, bool) {
	name := l.Identity.ConfigFileName()
	for _, dir := range l.candidates() {
		path := filepath.Join(dir, name)
		l.Logger.Debug("checking if config exists", "path", path)
		if fileExists(path) {
			l.Logger.Info("found config", "path", path)
			return path, true
		}
	}
	return "", false
}

// Load runs the full pipeline: locate, read, parse, lint. Every failure is
// a configuration error naming the file and the specific violation. The
// lint pass only warns; it never blocks.
func (l *Loader) Load() (*Config, string, error) {
	path, ok := l.Locate()
	if !ok {
		return nil, "", issue.NewErrorContext().
			WithOperation("find config file").
			WithResource(l.Identity.ConfigFileName()).
			WithKind(issue.ErrConfiguration).
			WithSuggestion(fmt.Sprintf("Create %s in the current directory", l.Identity.ConfigFileName())).
			WithSuggestion(fmt.Sprintf("Or install it system-wide under %s", l.systemDir())).
			Wrap(fmt.Errorf("no candidate directory contains %s", l.Identity.ConfigFileName())).
			BuildError()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("read config file").
			WithResource(path).
			WithKind(issue.ErrConfiguration).
			WithSuggestion("Check that the file is readable by the current user").
			Wrap(err).
			BuildError()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("parse config file").
			WithResource(path).
			WithKind(issue.ErrConfiguration).
			WithSuggestion(`before_run takes exactly one of "command" or "script_path"`).
			WithSuggestion(`run takes exactly one of "subcommand_of" or "path"`).
			Wrap(err).
			BuildError()
	}

	for _, warning := range Lint(cfg) {
		l.Logger.Warn(warning)
	}

	return cfg, path, nil
}

func (l *Loader) candidates() []string {
	return []string{l.WorkDir, l.systemDir()}
}

func (l *Loader) systemDir() string {
	if l.SystemDir != "" {
		return l.SystemDir
	}
	return platform.SystemConfigDir()
}

// fileExists checks for existence via a direct probe; files and
// directories both count, matching the root-resolution semantics.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
